package extract

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dtnitsch/pdf-outline-parser/models"
)

var (
	// titleStyle for the summary header
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// PrintSummary renders the end-of-run summary: per-document status lines
// followed by the aggregate box.
func PrintSummary(w io.Writer, results []Result, stats Stats) {
	fmt.Fprintln(w)
	for _, r := range results {
		name := filepath.Base(r.Path)
		if r.Error != nil {
			fmt.Fprintf(w, "%s %s  %s\n", errorStyle.Render("✗"), name, dimStyle.Render(r.Error.Error()))
			continue
		}
		fmt.Fprintf(w, "%s %s  %s\n", successStyle.Render("✓"), name,
			dimStyle.Render(fmt.Sprintf("profile=%s headings=%d", r.Profile, len(r.Record.Outline))))
	}

	line1 := fmt.Sprintf("%s %d  %s %d  %s %d  %s %.1fs",
		dimStyle.Render("Documents:"), stats.TotalDocuments,
		dimStyle.Render("OK:"), stats.Successful,
		dimStyle.Render("Failed:"), stats.Failed,
		dimStyle.Render("Time:"), stats.TotalTimeSeconds,
	)

	line2 := fmt.Sprintf("%s %s",
		dimStyle.Render("Headings:"), formatLevelCounts(stats.HeadingsPerLevel))

	content := titleStyle.Render("Run Complete") + "\n" + line1 + "\n" + line2
	if len(stats.TopKeywords) > 0 {
		content += "\n" + fmt.Sprintf("%s %s",
			dimStyle.Render("Top keywords:"), strings.Join(stats.TopKeywords, " "))
	}
	fmt.Fprintln(w, boxStyle.Render(content))

	fmt.Fprintf(w, "Processed %d PDF file(s).\n", stats.TotalDocuments)
}

// formatLevelCounts renders heading totals in fixed H1/H2/H3 order.
func formatLevelCounts(counts map[string]int) string {
	return fmt.Sprintf("H1=%d H2=%d H3=%d",
		counts[models.LevelH1], counts[models.LevelH2], counts[models.LevelH3])
}
