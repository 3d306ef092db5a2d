package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/frameflux/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the catalog",
	Long: `Browse the catalog, newest first.

Examples:
  frameflux catalog
  frameflux catalog --type anime --genre Action
  frameflux catalog --type movie --year 2019 --page 2`,
	Args: cobra.NoArgs,
	RunE: runCatalogCmd,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().String("type", "", "Content type (movie, anime, webseries)")
	catalogCmd.Flags().String("genre", "", "Genre")
	catalogCmd.Flags().String("year", "", "Release year")
	catalogCmd.Flags().Int("page", 1, "Page number")
	catalogCmd.Flags().Bool("genres", false, "Show genre and year facets")
}

func runCatalogCmd(cmd *cobra.Command, _ []string) error {
	typ, _ := cmd.Flags().GetString("type")
	genre, _ := cmd.Flags().GetString("genre")
	year, _ := cmd.Flags().GetString("year")
	page, _ := cmd.Flags().GetInt("page")
	facets, _ := cmd.Flags().GetBool("genres")

	client := NewClient(serverURL)
	resp, err := client.Catalog(cmd.Context(), catalog.Filter{Type: typ, Genre: genre, Year: year}, page)
	if err != nil {
		return fmt.Errorf("catalog failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	if resp.Latest.Total == 0 {
		fmt.Fprintln(stdout, "No titles match")
		return nil
	}

	fmt.Fprintf(stdout, "Catalog (%d titles, page %d/%d):\n\n", resp.Latest.Total, resp.Latest.Page, resp.Latest.TotalPages)
	printItemTable(resp.Latest.Items)

	if facets {
		fmt.Fprintln(stdout, "\nGenres:")
		for _, g := range resp.Genres {
			fmt.Fprintf(stdout, "  %-14s %d\n", g.Name, g.Count)
		}
		fmt.Fprintf(stdout, "\nYears: %s\n", joinOrDash(resp.Years))
	}
	return nil
}
