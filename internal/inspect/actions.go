// Package inspect implements the diagnostics command: it dumps the detected
// profile, the scored title candidates and the surviving heading candidates
// for a single document, so the heuristic behavior can be audited without
// reading JSON artifacts.
package inspect

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/pdf-outline-parser/pkg/analytics"
	"github.com/dtnitsch/pdf-outline-parser/pkg/outline"
	"github.com/dtnitsch/pdf-outline-parser/pkg/pdfspan"
	"github.com/urfave/cli/v2"
)

// Action handles `inspect <pdf>`.
func Action(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	path := c.Args().Get(0)
	if path == "" {
		return fmt.Errorf("usage: inspect <pdf>")
	}

	doc, err := pdfspan.Open(path)
	if err != nil {
		logger.Error("failed to open document", "document", path, "error", err)
		os.Exit(2)
	}
	defer doc.Close()

	profile := outline.DetectProfile(doc)
	fmt.Printf("document: %s\n", path)
	fmt.Printf("pages: %d\n", doc.NumPages())
	fmt.Printf("profile: %s\n", profile)

	if doc.NumPages() > 0 {
		fmt.Println("\ntitle candidates (page 0):")
		titleCandidates := outline.TitleCandidates(doc.Page(0))
		if len(titleCandidates) == 0 {
			fmt.Println("  (none)")
		}
		for _, tc := range titleCandidates {
			fmt.Printf("  score=%d size=%.1f bold=%t y=%.0f %q\n", tc.Score, tc.Size, tc.Bold, tc.Y, tc.Text)
		}
	}

	fmt.Println("\nheading candidates:")
	total := 0
	for i := 0; i < doc.NumPages(); i++ {
		for _, h := range outline.HeadingCandidates(doc.Page(i), profile) {
			fmt.Printf("  page=%d size=%.1f bold=%t %q\n", h.Page, h.Size, h.Bold, h.Text)
			total++
		}
	}
	if total == 0 {
		fmt.Println("  (none)")
	}

	record := outline.Extract(doc)
	fmt.Printf("\ntitle: %q\n", record.Title)
	fmt.Println("outline:")
	if len(record.Outline) == 0 {
		fmt.Println("  (empty)")
	}
	for _, e := range record.Outline {
		fmt.Printf("  %s page=%d %q\n", e.Level, e.Page, e.Text)
	}

	a := &analytics.Analytics{}
	if words := a.TopNWords(record.HeadingText(), 5); len(words) > 0 {
		fmt.Printf("\ntop heading words: %s\n", strings.Join(words, " "))
	}
	return nil
}
