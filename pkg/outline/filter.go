package outline

import (
	"sort"
	"strings"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
)

// RFP/digital-library section keywords for leveling. Membership appears only
// here: it demotes rather than includes.
var (
	rfpH1Sections = []string{"summary", "background", "milestones", "approach", "evaluation"}
	rfpH2Sections = []string{"appendix", "terms of reference", "membership"}
)

// filterAndLevel deduplicates candidates, applies the profile special cases
// and assigns H1/H2/H3 levels. The result is ordered by ascending page,
// stable for ties.
func filterAndLevel(candidates []Candidate, profile detector.Profile) []models.OutlineEntry {
	entries := []models.OutlineEntry{}
	if len(candidates) == 0 {
		return entries
	}

	seen := make(map[string]struct{}, len(candidates))
	unique := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.Text]; ok {
			continue
		}
		seen[c.Text] = struct{}{}
		unique = append(unique, c)
	}

	// Flyer and invite documents collapse to at most one heading, pinned to
	// page 0 regardless of where the banner text actually sits.
	switch profile {
	case detector.ProfilePathwayFlyer:
		return singleBanner(unique, "pathway options")
	case detector.ProfileRSVPInvite:
		return singleBanner(unique, "hope to see you there")
	}

	for _, c := range unique {
		entries = append(entries, models.OutlineEntry{
			Level: headingLevel(c, profile),
			Text:  c.Text,
			Page:  c.Page,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Page < entries[j].Page
	})
	return entries
}

// singleBanner returns a one-entry H1 outline for the first candidate
// containing the banner phrase, or an empty outline if none does.
func singleBanner(candidates []Candidate, banner string) []models.OutlineEntry {
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Text), banner) {
			return []models.OutlineEntry{{Level: models.LevelH1, Text: c.Text, Page: 0}}
		}
	}
	return []models.OutlineEntry{}
}

// headingLevel assigns H1/H2/H3. RFP documents level by section keyword;
// everything else levels by font size.
func headingLevel(c Candidate, profile detector.Profile) string {
	if profile == detector.ProfileRFP {
		lower := strings.ToLower(c.Text)
		for _, section := range rfpH1Sections {
			if strings.Contains(lower, section) {
				return models.LevelH1
			}
		}
		for _, section := range rfpH2Sections {
			if strings.Contains(lower, section) {
				return models.LevelH2
			}
		}
		return models.LevelH3
	}

	switch {
	case c.Size > 16:
		return models.LevelH1
	case c.Size > 14:
		return models.LevelH2
	default:
		return models.LevelH3
	}
}
