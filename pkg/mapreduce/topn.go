package mapreduce

import (
	"fmt"
	"sort"
)

// TopKeywords returns the top N keywords from aggregated word counts as
// formatted strings. Each string is formatted as "word:count"
// (e.g., "introduction:12").
func TopKeywords(wordCounts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	ss := make([]kv, 0, len(wordCounts))
	for k, v := range wordCounts {
		ss = append(ss, kv{k, v})
	}

	// Sort by count descending; break ties alphabetically so the summary is
	// deterministic across runs.
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}

	return keywords
}
