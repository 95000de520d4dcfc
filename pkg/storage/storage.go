// Package storage handles the output side of a run: directory setup and one
// JSON artifact per input document.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Storage struct{}

// EnsureDir creates the output directory if it does not exist.
func (s *Storage) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// OutputPath maps an input document path to its artifact path:
// <outputDir>/<stem>.json.
func (s *Storage) OutputPath(outputDir, documentPath string) string {
	stem := strings.TrimSuffix(filepath.Base(documentPath), filepath.Ext(documentPath))
	return filepath.Join(outputDir, stem+".json")
}

// SaveJSON writes v to filePath as UTF-8 JSON indented with four spaces.
// HTML escaping is off so heading text round-trips byte for byte.
func (s *Storage) SaveJSON(filePath string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	if err := os.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// HasFile reports whether the artifact at fn already exists.
func (s *Storage) HasFile(fn string) bool {
	return fileExists(fn)
}
