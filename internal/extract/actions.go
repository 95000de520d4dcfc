package extract

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/mapreduce"
	"github.com/dtnitsch/pdf-outline-parser/pkg/storage"
	"github.com/urfave/cli/v2"
)

const topKeywordCount = 10

// Action is the CLI entry point for an extraction run. It resolves the run
// configuration, fans the input documents out over the worker pool, writes
// one artifact per document and prints the run summary.
//
// Per-document failures are reported and absorbed; only startup problems
// (unreadable config, missing input directory) terminate the run.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	// Flags and positional arguments override the config file.
	if c.IsSet("input-dir") {
		config.InputDir = c.String("input-dir")
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}
	if arg := c.Args().Get(0); arg != "" {
		config.InputDir = arg
	}
	if arg := c.Args().Get(1); arg != "" {
		config.OutputDir = arg
	}
	if config.WorkerCount <= 0 {
		config.WorkerCount = models.DefaultWorkerCount
	}

	if info, statErr := os.Stat(config.InputDir); statErr != nil || !info.IsDir() {
		logger.Error("input directory not accessible", "dir", config.InputDir, "error", statErr)
		os.Exit(2)
	}

	files, err := filepath.Glob(filepath.Join(config.InputDir, "*.pdf"))
	if err != nil {
		logger.Error("failed to list input directory", "dir", config.InputDir, "error", err)
		os.Exit(2)
	}
	sort.Strings(files)

	if len(files) == 0 {
		// Informational, not an error: the run completes normally.
		fmt.Println("No PDF files found in input directory.")
		return nil
	}

	store := &storage.Storage{}
	if err := store.EnsureDir(config.OutputDir); err != nil {
		logger.Error("failed to prepare output directory", "dir", config.OutputDir, "error", err)
		os.Exit(2)
	}

	if c.Bool("skip-existing") {
		files = filterExisting(store, config.OutputDir, files)
		if len(files) == 0 {
			fmt.Println("All artifacts up to date.")
			return nil
		}
	}

	results, wordCounts := run(logger, config, store, files)

	stats := buildStats(results, wordCounts, time.Since(startTime))
	PrintSummary(os.Stdout, results, stats)
	return nil
}

// filterExisting drops documents whose artifact already exists, printing a
// skip line for each.
func filterExisting(store *storage.Storage, outputDir string, files []string) []string {
	kept := files[:0]
	for _, f := range files {
		if store.HasFile(store.OutputPath(outputDir, f)) {
			fmt.Printf("Skipping %s (artifact exists)\n", filepath.Base(f))
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// buildStats aggregates per-document results into the run summary.
func buildStats(results []Result, wordCounts map[string]int, elapsed time.Duration) Stats {
	stats := Stats{
		TotalDocuments:   len(results),
		HeadingsPerLevel: make(map[string]int),
		TotalTimeSeconds: elapsed.Seconds(),
	}
	for _, r := range results {
		if r.Error != nil {
			stats.Failed++
			continue
		}
		stats.Successful++
		for level, count := range r.Record.LevelCounts() {
			stats.HeadingsPerLevel[level] += count
		}
	}
	stats.TopKeywords = mapreduce.TopKeywords(wordCounts, topKeywordCount)
	return stats
}
