package outline

import (
	"strings"
	"testing"

	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
)

func TestIsObviouslyNotHeading(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"too short", "ab", true},
		{"minimum length ok", "abc", false},
		{"too long", strings.Repeat("A", 201), true},
		{"leader dots", "Introduction " + strings.Repeat(".", 45) + " 5", true},
		{"short dot run ok", "Version 1.0.2 release notes", false},
		{"www url", "see www.example.io for details", true},
		{"dot com", "example.com", true},
		{"dot org", "archive.org mirror", true},
		{"form label designation", "Designation", true},
		{"form label mixed case", "NAME OF THE GOVERNMENT SERVANT", true},
		{"form label pay", "Pay + SI + NPA", true},
		{"rfp reference number", "RFP: Business Plan Development 2023", true},
		{"purely numeric", "20242", true},
		{"long punctuated prose", strings.Repeat("word ", 20) + "trailing clause, with punctuation", true},
		{"long unpunctuated run", strings.Repeat("word ", 20) + "trailing clause sans stops", false},
		{"bullet glyph", "• first item", true},
		{"dash prefix", "- dashed item", true},
		{"star prefix", "* starred item", true},
		{"numbered list item", "1. in progress", true},
		{"numbered list item capitalized", "1. In Progress", true},
		{"decimal sub-item no space", "2.1Overview", true},
		{"decimal heading with space survives", "1.2 Scope", false},
		{"currency pair", "$5M$10M", true},
		{"caps funding label", "FUNDING TARGET $5M", true},
		{"plain heading", "Approach and Methodology", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isObviouslyNotHeading(tt.text); got != tt.want {
				t.Errorf("isObviouslyNotHeading(%q) = %t, want %t", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsLikelyHeading(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		size    float64
		bold    bool
		profile detector.Profile
		want    bool
	}{
		{"numbered heading", "1.2 Scope", 10, false, detector.ProfileGeneric, true},
		{"numbered heading no subnumber", "3. Evaluation criteria", 10, false, detector.ProfileGeneric, true},
		{"upper case long", "EXECUTIVE BRIEFING", 10, false, detector.ProfileGeneric, true},
		{"upper case short", "FAQ", 10, false, detector.ProfileGeneric, false},
		{"upper case boundary five", "NOTES", 10, false, detector.ProfileGeneric, false},
		{"bold above fourteen", "Quiet subsection marker", 14.5, true, detector.ProfileGeneric, true},
		{"bold at fourteen", "Quiet subsection marker", 14, true, detector.ProfileGeneric, false},
		{"plain above sixteen", "Quiet subsection marker", 16.5, false, detector.ProfileGeneric, true},
		{"plain at sixteen", "Quiet subsection marker", 16, false, detector.ProfileGeneric, false},
		{"foundation keyword", "Table of Contents", 10, false, detector.ProfileFoundation, true},
		{"foundation keyword wrong profile", "Table of Contents", 10, false, detector.ProfileGeneric, false},
		{"rfp keyword", "Terms of Reference", 10, false, detector.ProfileRFP, true},
		{"pathway banner", "Your Pathway Options Explained", 10, false, detector.ProfilePathwayFlyer, true},
		{"rsvp banner", "We hope to see you there!", 10, false, detector.ProfileRSVPInvite, true},
		{"nothing matches", "an ordinary paragraph lead", 10, false, detector.ProfileGeneric, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isLikelyHeading(tt.text, tt.size, tt.bold, tt.profile)
			if got != tt.want {
				t.Errorf("isLikelyHeading(%q, %.1f, %t, %v) = %t, want %t",
					tt.text, tt.size, tt.bold, tt.profile, got, tt.want)
			}
		})
	}
}

func TestIsUpperText(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"HEADING", true},
		{"HEADING 42", true},
		{"Heading", false},
		{"heading", false},
		{"1234", false},
		{"", false},
		{"A B C", true},
	}
	for _, tt := range tests {
		if got := isUpperText(tt.text); got != tt.want {
			t.Errorf("isUpperText(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func TestHeadingCandidatesExclusionBeatsInclusion(t *testing.T) {
	// A numbered-list item stays out even when bold and oversized.
	page := makePage(1,
		textBlock("1. in progress", 20, true, 100),
		textBlock("2.4 Rollout Plan", 10, false, 200),
	)

	got := HeadingCandidates(page, detector.ProfileGeneric)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1: %v", len(got), got)
	}
	if got[0].Text != "2.4 Rollout Plan" {
		t.Errorf("candidate = %q, want the numbered heading", got[0].Text)
	}
	if got[0].Page != 1 {
		t.Errorf("candidate page = %d, want 1", got[0].Page)
	}
}
