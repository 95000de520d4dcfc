package extract

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/analytics"
	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
	"github.com/dtnitsch/pdf-outline-parser/pkg/mapreduce"
	"github.com/dtnitsch/pdf-outline-parser/pkg/outline"
	"github.com/dtnitsch/pdf-outline-parser/pkg/pdfspan"
	"github.com/dtnitsch/pdf-outline-parser/pkg/storage"
)

// run fans the input documents out over a worker pool and collects the
// per-document results plus the aggregated heading keyword counts.
// Documents are independent; nothing is shared between jobs.
func run(logger *slog.Logger, config *models.RunConfig, store *storage.Storage, files []string) ([]Result, map[string]int) {
	a := &analytics.Analytics{}

	logger.Info("Starting extraction phase", "document_count", len(files), "workers", config.WorkerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(files))
	results := make(chan Result, len(files))

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go worker(w, logger, store, a, config.OutputDir, &wg, jobs, results)
	}

	for _, path := range files {
		jobs <- Job{Path: path}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All extraction workers finished")

	allResults := make([]Result, 0, len(files))
	intermediate := make([]map[string]int, 0, len(files))
	for result := range results {
		allResults = append(allResults, result)
		if result.WordCounts != nil {
			intermediate = append(intermediate, result.WordCounts)
		}
	}

	return allResults, mapreduce.Reduce(intermediate)
}

// worker processes jobs from the jobs channel and sends results to the
// results channel. Every job produces an artifact, even on failure.
func worker(id int, logger *slog.Logger, store *storage.Storage, a *analytics.Analytics, outputDir string, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		name := filepath.Base(job.Path)
		fmt.Printf("Processing %s...\n", name)
		logger.Info("Worker started job", "worker_id", id, "document", name)

		result := Result{
			Path:    job.Path,
			OutPath: store.OutputPath(outputDir, job.Path),
		}

		record, profile, err := extractDocument(job.Path)
		result.Record = record
		result.Profile = profile
		if err != nil {
			// Best effort: report, keep the default empty record, move on.
			fmt.Printf("Error processing %s: %v\n", name, err)
			logger.Error("Error extracting outline", "worker_id", id, "document", name, "error", err)
			result.Error = err
			result.ErrorType = "extract_error"
		} else {
			result.WordCounts = mapreduce.Map(record.HeadingText(), a)
		}

		if err := store.SaveJSON(result.OutPath, result.Record); err != nil {
			logger.Error("Error saving artifact", "worker_id", id, "document", name, "error", err)
			if result.Error == nil {
				result.Error = err
				result.ErrorType = "save_error"
			}
			results <- result
			continue
		}

		fmt.Printf("Saved outline to %s\n", result.OutPath)
		logger.Info("Worker finished job", "worker_id", id, "document", name,
			"profile", result.Profile.String(), "headings", len(result.Record.Outline))
		results <- result
	}
}

// extractDocument is the per-document boundary: it opens the PDF, extracts
// the record and releases the handle on every path. Open or parse failures
// come back as an error alongside the default empty record; the heuristics
// themselves never fail. The pdf library panics on some malformed inputs,
// so the boundary also recovers.
func extractDocument(path string) (record models.Record, profile detector.Profile, err error) {
	record = models.EmptyRecord()
	defer func() {
		if r := recover(); r != nil {
			record = models.EmptyRecord()
			profile = detector.ProfileGeneric
			err = fmt.Errorf("parse pdf %s: %v", path, r)
		}
	}()

	doc, openErr := pdfspan.Open(path)
	if openErr != nil {
		return record, detector.ProfileGeneric, openErr
	}
	defer doc.Close()

	record, profile = outline.ExtractWithProfile(doc)
	return record, profile, nil
}
