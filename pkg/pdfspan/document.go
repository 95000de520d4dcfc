package pdfspan

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Document is an open PDF. It owns the underlying file handle; Close must be
// called when processing of the document is finished.
type Document struct {
	file   *os.File
	reader *pdf.Reader
}

// Open opens the PDF at path for span extraction.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Document{file: f, reader: r}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}

// NumPages returns the page count. A malformed page tree yields zero.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// Page extracts the text blocks of the 0-based page i. A missing or null
// page yields an empty Page rather than an error; the heuristics downstream
// treat it as a page with no text.
func (d *Document) Page(i int) Page {
	page := Page{Number: i}
	p := d.reader.Page(i + 1) // ledongthuc pages are 1-based
	if p.V.IsNull() {
		return page
	}
	page.Blocks = groupBlocks(p.Content().Text, pageHeight(p))
	return page
}

// pageHeight resolves the page height from the MediaBox, walking up the page
// tree because the entry is inheritable. Falls back to US Letter.
func pageHeight(p pdf.Page) float64 {
	v := p.V
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		if mb := v.Key("MediaBox"); mb.Len() == 4 {
			if h := mb.Index(3).Float64() - mb.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return 792
}
