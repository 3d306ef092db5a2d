package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search the catalog and OMDb",
	Long: `Search titles by name, description and genre.

Examples:
  frameflux search inception
  frameflux search "attack on titan"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	client := NewClient(serverURL)
	resp, err := client.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	if len(resp.Local) == 0 && len(resp.Remote) == 0 {
		fmt.Fprintf(stdout, "No results for %q\n", query)
		return nil
	}
	if len(resp.Local) > 0 {
		fmt.Fprintf(stdout, "In the catalog (%d):\n\n", len(resp.Local))
		printItemTable(resp.Local)
	}
	if len(resp.Remote) > 0 {
		if len(resp.Local) > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintf(stdout, "From OMDb (%d):\n\n", len(resp.Remote))
		printItemTable(resp.Remote)
	}
	return nil
}
