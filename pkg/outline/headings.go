package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
	"github.com/dtnitsch/pdf-outline-parser/pkg/pdfspan"
)

// Heading candidate length window, inclusive.
const (
	headingMinLen = 3
	headingMaxLen = 200
)

var (
	// reNumberedHeading matches numbered section headings ("1. Introduction",
	// "2.1 Overview"). It both includes a candidate and overrides
	// reDecimalItem for the same text; that precedence is load-bearing.
	reNumberedHeading = regexp.MustCompile(`^\d+\.(\d+)?\s+[A-Za-z]`)

	// reLeaderDots matches table-of-contents filler.
	reLeaderDots = regexp.MustCompile(`\.{41,}`)

	// reRFPNumber matches RFP reference lines ("RFP: ... 2024").
	reRFPNumber = regexp.MustCompile(`^RFP:.*\d{4}$`)

	// reNumericOnly matches bare numbers (page numbers, figures).
	reNumericOnly = regexp.MustCompile(`^\d+$`)

	// reListItem matches lowered numbered-list enumeration ("1. something").
	reListItem = regexp.MustCompile(`^\d+\.\s*[a-z]`)

	// reDecimalItem matches decimal sub-items with no separating space
	// surviving reNumberedHeading ("2.1Overview").
	reDecimalItem = regexp.MustCompile(`^\d+\.\d+\s*[A-Za-z]`)

	// reAmount and reAmountLabel match bare currency/metric callouts
	// ("$5M$10M", "FUNDING $5M").
	reAmount      = regexp.MustCompile(`^\$?\d+[MKB]?\$?\d+[MKB]?$`)
	reAmountLabel = regexp.MustCompile(`^[A-Z\s]+\$\d+[MKB]`)
)

// garbageMarkers exclude leader dots handled above plus URL fragments.
var garbageMarkers = []string{"www.", ".com", ".org"}

// formFieldLabels are government-form field captions that read like headings
// but are form structure, not document structure.
var formFieldLabels = []string{
	"name of the government servant", "designation", "service", "pay + si + npa",
	"whether permanent or temporary", "home town as recorded", "amount of advance required",
}

// isObviouslyNotHeading applies the exclusion rules. Any match rejects the
// candidate before the inclusion rules ever see it, with one exception:
// reDecimalItem yields to reNumberedHeading so that "2.1 Overview" stays a
// heading while "1. in progress" stays an enumeration item.
func isObviouslyNotHeading(text string) bool {
	n := utf8.RuneCountInString(text)
	if n < headingMinLen || n > headingMaxLen {
		return true
	}

	if reLeaderDots.MatchString(text) {
		return true
	}
	for _, marker := range garbageMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}

	lower := strings.ToLower(text)
	for _, label := range formFieldLabels {
		if strings.Contains(lower, label) {
			return true
		}
	}

	if reRFPNumber.MatchString(text) || reNumericOnly.MatchString(text) {
		return true
	}

	// Long punctuated prose is body text.
	if n > 100 && strings.ContainsAny(text, ".,;:") {
		return true
	}

	if strings.HasPrefix(text, "•") || strings.HasPrefix(text, "-") || strings.HasPrefix(text, "*") {
		return true
	}
	if reListItem.MatchString(lower) {
		return true
	}
	if reDecimalItem.MatchString(text) && !reNumberedHeading.MatchString(text) {
		return true
	}

	if reAmount.MatchString(text) || reAmountLabel.MatchString(text) {
		return true
	}

	return false
}

// isLikelyHeading applies the inclusion rules in order, first match winning:
// numbered heading, fully upper-case, bold and large, very large, then the
// profile keyword table.
func isLikelyHeading(text string, size float64, bold bool, profile detector.Profile) bool {
	if reNumberedHeading.MatchString(text) {
		return true
	}
	if isUpperText(text) && utf8.RuneCountInString(text) > 5 {
		return true
	}
	if bold && size > 14 {
		return true
	}
	if size > 16 {
		return true
	}

	lower := strings.ToLower(text)
	for _, keyword := range profile.HeadingKeywords() {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// isUpperText reports whether the text has at least one cased rune and no
// lower-case runes.
func isUpperText(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// HeadingCandidates aggregates a page's blocks and keeps the ones that
// survive the exclusion rules and satisfy an inclusion rule.
func HeadingCandidates(page pdfspan.Page, profile detector.Profile) []Candidate {
	var headings []Candidate
	for _, c := range Candidates(page) {
		if isObviouslyNotHeading(c.Text) {
			continue
		}
		if isLikelyHeading(c.Text, c.Size, c.Bold, profile) {
			headings = append(headings, c)
		}
	}
	return headings
}
