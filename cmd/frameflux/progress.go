package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/frameflux/internal/playback"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Read or write resume positions",
}

var progressGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show a resume position",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgressGet,
}

var progressSetCmd = &cobra.Command{
	Use:     "set <key> <seconds>",
	Short:   "Store a resume position",
	Example: "  frameflux progress set video-progress-tt0903747-1-3 137.5",
	Args:    cobra.ExactArgs(2),
	RunE:    runProgressSet,
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressGetCmd, progressSetCmd)
}

func runProgressGet(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	resp, err := client.Progress(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("progress failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}
	if !resp.Found {
		fmt.Fprintf(stdout, "%s: not started\n", resp.Key)
		return nil
	}
	fmt.Fprintf(stdout, "%s: %s (%ss)\n", resp.Key, formatClock(resp.Position), playback.FormatPosition(resp.Position))
	return nil
}

func runProgressSet(cmd *cobra.Command, args []string) error {
	seconds, err := strconv.ParseFloat(args[1], 64)
	if err != nil || seconds < 0 {
		return fmt.Errorf("invalid position: %s", args[1])
	}

	client := NewClient(serverURL)
	if err := client.SetProgress(cmd.Context(), args[0], seconds); err != nil {
		return fmt.Errorf("progress failed: %w", err)
	}

	if jsonOutput {
		printJSON(ProgressResponse{Key: args[0], Position: seconds, Found: true})
		return nil
	}
	fmt.Fprintf(stdout, "%s: saved at %s\n", args[0], formatClock(seconds))
	return nil
}
