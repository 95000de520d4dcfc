// Package detector classifies a document into one of a closed set of
// profiles from the plain text of its first pages. The profile conditions
// both heading-candidate inclusion and final outline leveling, so the
// precedence below is part of the output contract.
package detector

import "strings"

// Profile is the detected document profile. The set is closed and tuned to
// specific document families; anything unrecognized is ProfileGeneric.
type Profile int

const (
	// ProfileGeneric applies when no other profile matches. Only the
	// size/boldness/pattern rules can include headings.
	ProfileGeneric Profile = iota

	// ProfileForm covers fill-in forms (grant applications, government
	// forms). Form documents get no outline at all.
	ProfileForm

	// ProfilePathwayFlyer covers single-page program flyers whose only
	// meaningful heading is the "pathway options" banner.
	ProfilePathwayFlyer

	// ProfileRSVPInvite covers event invitations whose only meaningful
	// heading is the "hope to see you there" line.
	ProfileRSVPInvite

	// ProfileFoundation covers foundation-level course/certification
	// material with a fixed table of section names.
	ProfileFoundation

	// ProfileRFP covers RFP and digital-library business documents with
	// keyword-driven section leveling.
	ProfileRFP
)

// ClassifyPages is how many leading pages feed the classifier.
const ClassifyPages = 3

var profileNames = map[Profile]string{
	ProfileGeneric:      "generic",
	ProfileForm:         "form",
	ProfilePathwayFlyer: "pathway-flyer",
	ProfileRSVPInvite:   "rsvp-invite",
	ProfileFoundation:   "foundation",
	ProfileRFP:          "rfp",
}

func (p Profile) String() string {
	if name, ok := profileNames[p]; ok {
		return name
	}
	return "unknown"
}

// markers are the substrings whose presence selects each profile, in
// precedence order. First match wins; detection is not mutually exclusive,
// precedence is what makes the special-casing deterministic.
var markers = []struct {
	profile Profile
	terms   []string
}{
	{ProfileForm, []string{"application form", "government servant"}},
	{ProfilePathwayFlyer, []string{"pathway options", "stem pathways"}},
	{ProfileRSVPInvite, []string{"hope to see you", "rsvp"}},
	{ProfileFoundation, []string{"foundation level"}},
	{ProfileRFP, []string{"rfp", "digital library"}},
}

// Classify detects the document profile from the concatenated plain text of
// the first pages. Matching is case-insensitive substring membership;
// computed once per document.
func Classify(docText string) Profile {
	lower := strings.ToLower(docText)
	for _, m := range markers {
		for _, term := range m.terms {
			if strings.Contains(lower, term) {
				return m.profile
			}
		}
	}
	return ProfileGeneric
}

// foundationKeywords are the section names included as headings in
// foundation-level course material when no structural rule fires.
var foundationKeywords = []string{
	"revision history", "table of contents", "acknowledgements",
	"introduction", "references", "trademarks", "documents",
	"intended audience", "career paths", "learning objectives",
	"entry requirements", "structure and course duration",
	"keeping it current", "business outcomes", "content",
}

// rfpKeywords are the section names included as headings in RFP and
// digital-library documents.
var rfpKeywords = []string{
	"background", "summary", "milestones", "approach",
	"evaluation", "appendix", "terms of reference",
}

// HeadingKeywords returns the profile's inclusion keyword table. A heading
// candidate that matched no structural rule is still included when its text
// contains one of these, case-insensitively. Generic and form profiles have
// no table.
func (p Profile) HeadingKeywords() []string {
	switch p {
	case ProfileFoundation:
		return foundationKeywords
	case ProfileRFP:
		return rfpKeywords
	case ProfilePathwayFlyer:
		return []string{"pathway options"}
	case ProfileRSVPInvite:
		return []string{"hope to see you there"}
	default:
		return nil
	}
}
