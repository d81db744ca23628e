// Package jsonconfig patches the path alias into tsconfig/jsconfig style files.
//
// The files are treated as open JSON documents: unknown keys are carried through
// untouched and only compilerOptions.baseUrl and compilerOptions.paths are set.
package jsonconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"

	"frontend-setup/internal/logger"
)

const (
	// BaseURL is the value written to compilerOptions.baseUrl.
	BaseURL = "."
	// AliasPattern is the import alias mapped onto the source directory.
	AliasPattern = "@/*"
	// AliasTarget is the single path AliasPattern resolves to.
	AliasTarget = "./src/*"
)

// Document is a parsed JSON object with arbitrary keys.
type Document map[string]any

// Default returns a document containing only the alias settings:
//
//	{"compilerOptions": {"baseUrl": ".", "paths": {"@/*": ["./src/*"]}}}
func Default() Document {
	d := Document{}
	d.SetPathAlias()
	return d
}

// SetPathAlias sets compilerOptions.baseUrl and compilerOptions.paths, creating
// compilerOptions when it is missing or not an object. paths is replaced as a
// whole; any other compilerOptions keys are kept.
func (d Document) SetPathAlias() {
	opts, ok := d["compilerOptions"].(map[string]any)
	if !ok {
		opts = map[string]any{}
	}
	opts["baseUrl"] = BaseURL
	opts["paths"] = map[string]any{
		AliasPattern: []any{AliasTarget},
	}
	d["compilerOptions"] = opts
}

// utf8BOM is the byte order mark some Windows editors put in front of JSON files.
var utf8BOM = []byte("\xef\xbb\xbf")

// Parse decodes data as a JSON object. A leading UTF-8 byte order mark is
// ignored. Numbers are kept as json.Number so they are written back exactly
// as they were read.
func Parse(data []byte) (Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	// Trailing content after the object makes the file invalid JSON.
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected content after top-level value")
	}
	if doc == nil {
		return nil, errors.New("top-level value is not an object")
	}
	return doc, nil
}

// Marshal renders the document with 2-space indentation and a trailing newline.
// HTML characters are not escaped so existing values round-trip unchanged.
func (d Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Patch makes sure the file at path carries the path alias.
//
//   - existing, valid JSON: alias keys are set, everything else is preserved
//   - existing, unparseable: the error is logged and the file is replaced by Default()
//   - missing: the file is created with Default()
//
// Read and parse failures never surface as errors; only a failure to write the
// file is returned.
func Patch(path string, log *logger.Logger) error {
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("Config file not found, creating: %s", path)
		return write(path, nil, Default(), log)

	case err != nil:
		log.Error("Error updating config file: %s: %v", path, err)
		return write(path, nil, Default(), log)
	}

	log.Info("Updating Config: %s", path)
	doc, err := Parse(raw)
	if err != nil {
		log.Error("Error updating config file: %s: %v", path, err)
		return write(path, raw, Default(), log)
	}

	doc.SetPathAlias()
	return write(path, raw, doc, log)
}

// write serializes doc to path with mode 0644. When debug output is enabled
// the change against the previous content is logged as a diff.
func write(path string, previous []byte, doc Document, log *logger.Logger) error {
	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	if log.DebugEnabled() {
		log.Debug("Changes to %s:\n%s", path, diff(string(previous), string(data)))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// diff renders a colored, human readable diff between two file contents.
func diff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
