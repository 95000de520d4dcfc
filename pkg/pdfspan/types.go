// Package pdfspan extracts positioned text spans from PDF documents.
//
// Uses github.com/ledongthuc/pdf for parsing. The raw per-character text runs
// of a page are grouped into spans, lines and blocks so that downstream
// heuristics can reason about font size, boldness and position the way a
// structured text dump presents them. Only the embedded text layer is read;
// scanned (image-only) PDFs yield empty pages.
package pdfspan

import "strings"

// BBox is a span bounding box in top-origin page coordinates: Y0 is the
// distance from the top edge of the page to the top of the span.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// Span is an atomic text run with uniform font and size.
type Span struct {
	Text string
	Size float64
	Bold bool
	BBox BBox
}

// Line groups the spans sharing one baseline, in left-to-right order.
type Line struct {
	Spans []Span
}

// Block is a group of vertically adjacent lines. Blocks produced by this
// package always contain at least one line; non-text page content (images,
// paths) never becomes a block.
type Block struct {
	Lines []Line
}

// Page holds the text blocks of a single page. Number is the 0-based page
// index.
type Page struct {
	Number int
	Blocks []Block
}

// Text concatenates the block's span texts with no separators, mirroring how
// a structured text dump presents a block's raw content.
func (b Block) Text() string {
	var sb strings.Builder
	for _, line := range b.Lines {
		for _, span := range line.Spans {
			sb.WriteString(span.Text)
		}
	}
	return sb.String()
}

// Text returns the plain concatenated text of the page, one line per text
// line. Used only for document-profile classification, never for candidate
// scoring.
func (p Page) Text() string {
	var sb strings.Builder
	for _, block := range p.Blocks {
		for _, line := range block.Lines {
			for _, span := range line.Spans {
				sb.WriteString(span.Text)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
