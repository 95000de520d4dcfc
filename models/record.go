package models

import "strings"

// Heading levels assigned by the outline leveler.
const (
	LevelH1 = "H1"
	LevelH2 = "H2"
	LevelH3 = "H3"
)

// OutlineEntry is one heading in the extracted outline.
type OutlineEntry struct {
	Level string `json:"level"` // "H1" | "H2" | "H3"
	Text  string `json:"text"`
	Page  int    `json:"page"` // 0-based page index
}

// Record is the per-document output artifact. Field order matters: consumers
// depend on the exact JSON shape {"title": ..., "outline": [...]}.
type Record struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// EmptyRecord is the default record emitted when a document cannot be
// processed. The outline is non-nil so it serializes as [] rather than null.
func EmptyRecord() Record {
	return Record{Title: "", Outline: []OutlineEntry{}}
}

// HeadingText concatenates all outline entry texts, one per line. Used for
// run-level keyword analytics.
func (r Record) HeadingText() string {
	var sb strings.Builder
	for _, e := range r.Outline {
		sb.WriteString(e.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// LevelCounts tallies outline entries per heading level.
func (r Record) LevelCounts() map[string]int {
	counts := make(map[string]int)
	for _, e := range r.Outline {
		counts[e.Level]++
	}
	return counts
}
