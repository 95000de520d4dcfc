package extract

import (
	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
)

// Job is one input document for a worker to process.
type Job struct {
	Path string
}

// Result holds the outcome of a processed job. Record is always populated:
// a failed document carries the default empty record, which still gets
// written so every input has exactly one artifact.
type Result struct {
	Path       string
	OutPath    string
	Record     models.Record
	Profile    detector.Profile
	Error      error
	ErrorType  string
	WordCounts map[string]int
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalDocuments   int
	Successful       int
	Failed           int
	HeadingsPerLevel map[string]int
	TopKeywords      []string
	TotalTimeSeconds float64
}
