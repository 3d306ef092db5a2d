package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	status, err := client.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(status)
		return nil
	}

	search := "catalog only"
	if status.Searcher {
		search = "catalog + OMDb"
	}
	fmt.Fprintf(stdout, "Server:   %s (%s)\n", serverURL, status.Status)
	fmt.Fprintf(stdout, "Version:  %s\n", status.Version)
	fmt.Fprintf(stdout, "Titles:   %d\n", status.Titles)
	fmt.Fprintf(stdout, "Search:   %s\n", search)
	return nil
}
