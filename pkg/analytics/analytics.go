// Package analytics computes word frequencies over extracted heading text.
// The run summary uses it to show which section names dominate a batch.
package analytics

import (
	"sort"
	"strings"
)

type Analytics struct{}

// commonWords is a map of frequently occurring words that should be ignored
// in frequency analysis. This list can be extended as needed.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "along": {}, "also": {}, "although": {}, "always": {}, "among": {},
	"an": {}, "and": {}, "another": {}, "any": {}, "are": {}, "around": {},
	"as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "behind": {},
	"being": {}, "below": {}, "between": {}, "beyond": {}, "both": {},
	"but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "enough": {}, "etc": {},
	"even": {}, "ever": {}, "every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "hence": {}, "her": {},
	"here": {}, "his": {}, "how": {}, "however": {},

	"i": {}, "if": {}, "in": {}, "indeed": {}, "into": {}, "is": {},
	"it": {}, "its": {},

	"just": {},

	"last": {}, "least": {}, "less": {}, "like": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "might": {}, "more": {},
	"most": {}, "much": {}, "must": {}, "my": {},

	"neither": {}, "never": {}, "next": {}, "no": {}, "none": {},
	"nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "onto": {}, "or": {}, "other": {}, "our": {}, "out": {},
	"over": {}, "own": {},

	"per": {}, "perhaps": {},

	"rather": {},

	"same": {}, "several": {}, "should": {}, "since": {}, "so": {},
	"some": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "therefore": {}, "these": {}, "they": {}, "this": {},
	"those": {}, "through": {}, "thus": {}, "to": {}, "too": {},
	"toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "well": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "would": {},

	"yet": {}, "you": {}, "your": {},

	// Common heading boilerplate with no discriminating value.
	"chapter": {}, "section": {}, "part": {},
}

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// WordFrequency counts the non-stopword words of text. Words are lowered and
// trimmed to letters and digits before counting.
func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text)) // strings.Fields handles multiple spaces and newlines
	frequencies := make(map[string]int)

	for _, word := range words {
		// Remove punctuation from words
		word = strings.TrimFunc(word, func(r rune) bool {
			// Keep only lowercase letters and numbers
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})

		// Skip if it's a common word or empty after cleaning
		if _, exists := commonWords[word]; exists || word == "" {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

type wordCount struct {
	Word  string
	Count int
}

// TopNWords returns the n most frequent non-stopword words of text.
func (a *Analytics) TopNWords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	limit := n
	if len(counts) < n {
		limit = len(counts)
	}

	topN := make([]string, limit)
	for i := 0; i < limit; i++ {
		topN[i] = counts[i].Word
	}

	return topN
}
