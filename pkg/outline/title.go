package outline

import (
	"unicode/utf8"

	"github.com/dtnitsch/pdf-outline-parser/pkg/pdfspan"
)

// Title scoring thresholds. A candidate must beat titleScoreThreshold or the
// document gets an empty title.
const (
	titleMinLen         = 10  // exclusive
	titleMaxLen         = 200 // exclusive
	titleScoreThreshold = 2
	titleTopY           = 200 // page-coordinate units from the top
)

// TitleCandidate is a page-0 block candidate with its additive score.
type TitleCandidate struct {
	Candidate
	Score int
}

// TitleCandidates aggregates and scores the title candidates of the first
// page: +3 bold, +2 font size above 16 (else +1 above 14), +2 within the top
// of the page.
func TitleCandidates(page pdfspan.Page) []TitleCandidate {
	var scored []TitleCandidate
	for _, c := range Candidates(page) {
		n := utf8.RuneCountInString(c.Text)
		if n <= titleMinLen || n >= titleMaxLen {
			continue
		}
		score := 0
		if c.Bold {
			score += 3
		}
		if c.Size > 16 {
			score += 2
		} else if c.Size > 14 {
			score += 1
		}
		if c.Y < titleTopY {
			score += 2
		}
		scored = append(scored, TitleCandidate{Candidate: c, Score: score})
	}
	return scored
}

// bestTitle picks the highest-scoring candidate, first seen winning ties,
// and returns its text when the score clears the threshold. Never fails: a
// malformed or empty page yields an empty title.
func bestTitle(candidates []TitleCandidate) string {
	if len(candidates) == 0 {
		return ""
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	if best.Score > titleScoreThreshold {
		return best.Text
	}
	return ""
}
