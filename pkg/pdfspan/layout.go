package pdfspan

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// rowTolerance is the baseline Y distance (in points) within which runs
	// belong to the same line.
	rowTolerance = 3.0

	// wordGapFactor is the horizontal gap, as a fraction of font size, that
	// separates two words within a line.
	wordGapFactor = 0.3

	// blockGapFactor is the vertical gap, as a fraction of the larger font
	// size, that starts a new block.
	blockGapFactor = 1.5

	// ascentFactor approximates the distance from the baseline to the glyph
	// top as a fraction of the font size.
	ascentFactor = 0.8
)

// line carries the assembled spans plus the geometry needed for block
// grouping.
type line struct {
	spans    []Span
	baseline float64 // bottom-origin baseline Y
	maxSize  float64
}

// groupBlocks assembles raw content runs into blocks of lines of spans.
// Runs are grouped into lines by baseline proximity, lines into blocks by
// vertical gaps. height is the page height, used to convert the PDF
// bottom-origin Y into top-origin coordinates.
func groupBlocks(texts []pdf.Text, height float64) []Block {
	runs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) != "" {
			runs = append(runs, t)
		}
	}
	if len(runs) == 0 {
		return nil
	}

	// Top of page first, then reading order within a line.
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Y != runs[j].Y {
			return runs[i].Y > runs[j].Y
		}
		return runs[i].X < runs[j].X
	})

	var lines []line
	start := 0
	for i := 1; i <= len(runs); i++ {
		if i == len(runs) || runs[start].Y-runs[i].Y > rowTolerance {
			lines = append(lines, buildLine(runs[start:i], height))
			start = i
		}
	}

	var blocks []Block
	var current []Line
	for i, ln := range lines {
		if i > 0 {
			prev := lines[i-1]
			gap := prev.baseline - ln.baseline
			size := prev.maxSize
			if ln.maxSize > size {
				size = ln.maxSize
			}
			if gap > blockGapFactor*size {
				blocks = append(blocks, Block{Lines: current})
				current = nil
			}
		}
		current = append(current, Line{Spans: ln.spans})
	}
	if len(current) > 0 {
		blocks = append(blocks, Block{Lines: current})
	}
	return blocks
}

// buildLine merges one row of runs into spans. Consecutive runs with the
// same font and size join into a single span; a horizontal gap wider than
// wordGapFactor of the font size becomes a space.
func buildLine(row []pdf.Text, height float64) line {
	sorted := make([]pdf.Text, len(row))
	copy(sorted, row)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	ln := line{baseline: sorted[0].Y}
	var sb strings.Builder
	var cur Span
	open := false

	flush := func() {
		if open {
			cur.Text = sb.String()
			ln.spans = append(ln.spans, cur)
			sb.Reset()
			open = false
		}
	}

	var curFont string
	var prevEnd float64
	for _, t := range sorted {
		if t.FontSize > ln.maxSize {
			ln.maxSize = t.FontSize
		}
		wordGap := open && t.X-prevEnd > wordGapFactor*t.FontSize
		if open && (t.Font != curFont || t.FontSize != cur.Size) {
			flush()
		}
		if !open {
			cur = Span{
				Size: t.FontSize,
				Bold: isBoldFont(t.Font),
				BBox: BBox{
					X0: t.X,
					Y0: height - t.Y - ascentFactor*t.FontSize,
					Y1: height - t.Y,
				},
			}
			curFont = t.Font
			open = true
		}
		if wordGap {
			sb.WriteString(" ")
		}
		sb.WriteString(t.S)
		prevEnd = t.X + t.W
		cur.BBox.X1 = prevEnd
	}
	flush()
	return ln
}

// isBoldFont reports whether a font name advertises a bold face. PDF text
// runs expose the font name, not a style bitfield, so the name is the only
// boldness signal available.
func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy")
}
