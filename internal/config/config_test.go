package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "npm", cfg.PackageManager)
	assert.Equal(t, ".", cfg.FrontendPath)
	assert.False(t, cfg.TypeScript)
	assert.Nil(t, cfg.Components)
	assert.Len(t, cfg.Catalog, 10)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "setup.yaml", `
package_manager: pnpm
frontend_path: ./web
typescript: true
components: [button, card]
catalog: [button, card, dialog]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		PackageManager: "pnpm",
		FrontendPath:   "./web",
		TypeScript:     true,
		Components:     []string{"button", "card"},
		Catalog:        []string{"button", "card", "dialog"},
	}, cfg)
}

func TestLoadConfigPartialAndEmpty(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(writeFile(t, dir, "partial.yaml", "typescript: true\ncomponents: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "npm", cfg.PackageManager)
	assert.True(t, cfg.TypeScript)
	assert.NotNil(t, cfg.Components)
	assert.Empty(t, cfg.Components)
	assert.Equal(t, DefaultCatalog, cfg.Catalog)

	cfg, err = LoadConfig(writeFile(t, dir, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	_, err = LoadConfig(writeFile(t, dir, "unknown.yaml", "package_manger: yarn\n"))
	assert.ErrorContains(t, err, "failed to unmarshal")

	_, err = LoadConfig(writeFile(t, dir, "bad.yaml", "typescript: [\n"))
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "file.txt", "x")

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"ok", Config{PackageManager: "npm", FrontendPath: dir}, ""},
		{"empty manager", Config{FrontendPath: dir}, "must not be empty"},
		{"manager with args", Config{PackageManager: "npm --force", FrontendPath: dir}, "single executable name"},
		{"missing dir", Config{PackageManager: "npm", FrontendPath: filepath.Join(dir, "nope")}, "frontend path"},
		{"not a dir", Config{PackageManager: "npm", FrontendPath: file}, "is not a directory"},
		{"blank component", Config{PackageManager: "npm", FrontendPath: dir, Components: []string{"button", " "}}, "must not be blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
