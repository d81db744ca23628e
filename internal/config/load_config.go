package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at configFile on top of Default().
// An empty configFile returns Default() unchanged. Keys missing from the file
// keep their default values; unknown keys are rejected so typos do not go
// unnoticed.
func LoadConfig(configFile string) (Config, error) {
	cfg := Default()
	if configFile == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
	}

	// Explicitly blank values fall back to the defaults.
	if cfg.PackageManager == "" {
		cfg.PackageManager = DefaultPackageManager
	}
	if cfg.FrontendPath == "" {
		cfg.FrontendPath = DefaultFrontendPath
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = append([]string(nil), DefaultCatalog...)
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a run: the package manager
// is a single word and the frontend path is an existing directory.
func (c Config) Validate() error {
	if c.PackageManager == "" {
		return errors.New("package manager must not be empty")
	}
	if strings.IndexFunc(c.PackageManager, unicode.IsSpace) >= 0 {
		return fmt.Errorf("package manager %q must be a single executable name", c.PackageManager)
	}

	info, err := os.Stat(c.FrontendPath)
	if err != nil {
		return fmt.Errorf("frontend path %s: %w", c.FrontendPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("frontend path %s is not a directory", c.FrontendPath)
	}

	for _, name := range c.Components {
		if strings.TrimSpace(name) == "" {
			return errors.New("component names must not be blank")
		}
	}
	return nil
}
