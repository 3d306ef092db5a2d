package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show title details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowCmd,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	resp, err := client.Content(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("show failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	item := resp.Item
	fmt.Fprintf(stdout, "%s (%d)\n", item.Title, item.Year)
	fmt.Fprintf(stdout, "  Type:     %s\n", item.Type)
	fmt.Fprintf(stdout, "  Genres:   %s\n", joinOrDash(item.Genres))
	fmt.Fprintf(stdout, "  Rating:   %.1f/5 (%.1f/10)\n", resp.Rating, resp.SchemaRating)
	fmt.Fprintf(stdout, "  Runtime:  %s\n", formatMinutes(item.DurationMinutes))
	if item.Type.IsSeries() {
		fmt.Fprintf(stdout, "  Seasons:  %d\n", item.TotalSeasons)
	}
	fmt.Fprintf(stdout, "  Watch:    %s\n", resp.WatchPath)
	if item.Description != "" {
		fmt.Fprintf(stdout, "\n  %s\n", item.Description)
	}

	if len(resp.Related) > 0 {
		titles := make([]string, 0, len(resp.Related))
		for _, rel := range resp.Related {
			titles = append(titles, rel.Title)
		}
		fmt.Fprintf(stdout, "\nMore like this: %s\n", strings.Join(titles, ", "))
	}
	return nil
}
