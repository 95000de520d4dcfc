package extract

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
)

func TestExtractDocumentMissingFile(t *testing.T) {
	record, profile, err := extractDocument(filepath.Join(t.TempDir(), "missing.pdf"))

	if err == nil {
		t.Fatal("extractDocument() error = nil, want open error")
	}
	if !reflect.DeepEqual(record, models.EmptyRecord()) {
		t.Errorf("record = %v, want default empty record", record)
	}
	if profile != detector.ProfileGeneric {
		t.Errorf("profile = %v, want generic", profile)
	}
}

func TestExtractDocumentMalformedFile(t *testing.T) {
	// Garbage bytes behind a PDF header: the parser must surface an error,
	// not a panic, and the record stays the default.
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 garbage bytes, no xref, no trailer"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	record, _, err := extractDocument(path)

	if err == nil {
		t.Fatal("extractDocument() error = nil, want parse error")
	}
	if !reflect.DeepEqual(record, models.EmptyRecord()) {
		t.Errorf("record = %v, want default empty record", record)
	}
}
