// Package mapreduce aggregates per-document heading keyword counts into
// run-level totals for the end-of-run summary.
package mapreduce

import "github.com/dtnitsch/pdf-outline-parser/pkg/analytics"

// Map generates a word frequency map for a single document's heading text.
func Map(headingText string, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(headingText)
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
