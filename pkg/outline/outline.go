package outline

import (
	"strings"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
	"github.com/dtnitsch/pdf-outline-parser/pkg/pdfspan"
)

// Source supplies per-page text spans. *pdfspan.Document satisfies it; tests
// use in-memory fakes.
type Source interface {
	NumPages() int
	Page(i int) pdfspan.Page
}

// DetectProfile classifies the document from the plain text of its first
// pages.
func DetectProfile(src Source) detector.Profile {
	n := src.NumPages()
	if n > detector.ClassifyPages {
		n = detector.ClassifyPages
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(src.Page(i).Text())
	}
	return detector.Classify(sb.String())
}

// Extract runs the full pipeline over one document: title from the first
// page, profile from the first pages, heading candidates from every page,
// then filtering and leveling. It is a total function: a document that
// matches nothing yields an empty record, never an error.
func Extract(src Source) models.Record {
	record, _ := ExtractWithProfile(src)
	return record
}

// ExtractWithProfile is Extract plus the detected profile, for callers that
// report it (worker logs, the inspect command).
func ExtractWithProfile(src Source) (models.Record, detector.Profile) {
	record := models.EmptyRecord()
	if src.NumPages() == 0 {
		return record, detector.ProfileGeneric
	}

	record.Title = bestTitle(TitleCandidates(src.Page(0)))

	profile := DetectProfile(src)
	if profile == detector.ProfileForm {
		// Form documents never get an outline, whatever the title says.
		return record, profile
	}

	var candidates []Candidate
	for i := 0; i < src.NumPages(); i++ {
		candidates = append(candidates, HeadingCandidates(src.Page(i), profile)...)
	}
	record.Outline = filterAndLevel(candidates, profile)
	return record, profile
}
