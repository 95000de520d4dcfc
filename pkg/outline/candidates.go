// Package outline turns the text spans of a PDF into a best-guess title and
// a flat, leveled outline. Everything here is driven by font-size, boldness
// and position heuristics plus the per-profile keyword tables in
// pkg/detector; there is no semantic understanding of the document.
package outline

import (
	"strings"

	"github.com/dtnitsch/pdf-outline-parser/pkg/pdfspan"
)

// Candidate is a block-level aggregate over a block's spans: the unit both
// the title scorer and the heading extractor work on. Text is stripped of
// surrounding whitespace before any length or pattern check.
type Candidate struct {
	Text string
	Size float64 // max font size across the block's spans
	Bold bool    // true if any span is bold
	Y    float64 // min top-origin Y across spans; title scoring only
	Page int     // 0-based page index; heading extraction only
}

// Candidates aggregates a page's blocks into block candidates. One pass
// serves both title and heading extraction; each caller applies its own
// length window afterwards.
func Candidates(page pdfspan.Page) []Candidate {
	var candidates []Candidate
	for _, block := range page.Blocks {
		if len(block.Lines) == 0 {
			continue
		}
		c := Candidate{Page: page.Number}
		first := true
		for _, line := range block.Lines {
			for _, span := range line.Spans {
				if span.Size > c.Size {
					c.Size = span.Size
				}
				if span.Bold {
					c.Bold = true
				}
				if first || span.BBox.Y0 < c.Y {
					c.Y = span.BBox.Y0
					first = false
				}
			}
		}
		c.Text = strings.TrimSpace(block.Text())
		if c.Text == "" {
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates
}
