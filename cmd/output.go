package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/naka-gawa/org-contributors/internal/domain"
)

// writeRanked renders the ranked list in the requested format.
func writeRanked(w io.Writer, format string, ranked []domain.Contributor) error {
	switch format {
	case "table":
		writeTable(w, ranked)
		return nil
	case "json":
		return writeJSON(w, ranked)
	default:
		return fmt.Errorf("invalid output format %q: must be json or table", format)
	}
}

// writeJSON marshals the ranked list into a pretty-printed JSON array.
func writeJSON(w io.Writer, ranked []domain.Contributor) error {
	jsonData, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	fmt.Fprintln(w, string(jsonData))
	return nil
}

// writeTable renders the ranked list as an aligned terminal table.
func writeTable(w io.Writer, ranked []domain.Contributor) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Login", "Contributions"})
	for i, c := range ranked {
		t.AppendRow(table.Row{i + 1, c.Login, c.Contributions})
	}
	t.Render()
}

// writeSummary prints distribution statistics of the ranked totals.
func writeSummary(w io.Writer, s domain.Summary) {
	fmt.Fprintf(w, "contributors: %d, total contributions: %d\n", s.Contributors, s.Total)
	fmt.Fprintf(w, "mean: %.2f, median: %.2f, p90: %.2f, max: %d\n", s.Mean, s.Median, s.P90, s.Max)
}
