package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vmunix/frameflux/internal/content"
)

var stdout io.Writer = os.Stdout

func printJSON(v any) {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func printItemTable(items []*content.Item) {
	fmt.Fprintf(stdout, "  # │ %-36s │ %-9s │ %4s │ %5s │ %s\n", "TITLE", "TYPE", "YEAR", "STARS", "SLUG")
	fmt.Fprintln(stdout, "────┼──────────────────────────────────────┼───────────┼──────┼───────┼──────────")
	for i, item := range items {
		year := "-"
		if item.Year > 0 {
			year = fmt.Sprint(item.Year)
		}
		fmt.Fprintf(stdout, " %2d │ %-36s │ %-9s │ %4s │ %5.1f │ %s\n",
			i+1, truncate(item.Title, 36), item.Type, year, item.Rating.Stars(), item.Slug)
	}
}

func formatMinutes(m int) string {
	if m <= 0 {
		return "-"
	}
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", m/60, m%60)
}

func formatClock(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func joinOrDash(parts []string) string {
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
