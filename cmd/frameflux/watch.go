package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/frameflux/internal/content"
	"github.com/vmunix/frameflux/internal/playback"
	"github.com/vmunix/frameflux/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <type> <slug>",
	Short: "Play a title, saving the resume position on the server",
	Long: `Play a title headlessly. Playback starts at the stored resume position
and saves progress on every tick; Ctrl-C pauses and saves.

Examples:
  frameflux watch movie inception --play 2m
  frameflux watch webseries tt0903747 --season 2 --episode 3
  frameflux watch anime attack-on-titan --info`,
	Args: cobra.ExactArgs(2),
	RunE: runWatchCmd,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("season", 0, "Season number")
	watchCmd.Flags().Int("episode", 0, "Episode number")
	watchCmd.Flags().Duration("play", 30*time.Second, "How much to play")
	watchCmd.Flags().Duration("interval", time.Second, "Tick interval")
	watchCmd.Flags().Float64("speed", 1, "Playback speed")
	watchCmd.Flags().Bool("info", false, "Show the episode picker only")
}

// playOptions controls a headless playback run.
type playOptions struct {
	For      time.Duration
	Interval time.Duration
	Speed    float64
	Progress func(playback.State)
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	typ, ok := content.ParseType(args[0])
	if !ok {
		return fmt.Errorf("invalid type %q: must be movie, anime or webseries", args[0])
	}

	var season, episode *int
	if cmd.Flags().Changed("season") {
		v, _ := cmd.Flags().GetInt("season")
		season = &v
	}
	if cmd.Flags().Changed("episode") {
		v, _ := cmd.Flags().GetInt("episode")
		episode = &v
	}
	info, _ := cmd.Flags().GetBool("info")

	client := NewClient(serverURL)
	doc, err := client.Watch(cmd.Context(), typ, args[1], season, episode)
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	if info {
		if jsonOutput {
			printJSON(doc)
			return nil
		}
		printWatchDocument(doc)
		return nil
	}

	opts := playOptions{}
	opts.For, _ = cmd.Flags().GetDuration("play")
	opts.Interval, _ = cmd.Flags().GetDuration("interval")
	opts.Speed, _ = cmd.Flags().GetFloat64("speed")
	if !jsonOutput {
		printWatchDocument(doc)
		fmt.Fprintln(stdout)
		opts.Progress = printProgress
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	final, err := play(ctx, remoteStore{client: client}, doc, opts, log)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(final)
		return nil
	}
	fmt.Fprintf(stdout, "\nStopped at %s (saved to %s)\n", formatClock(final.Position), final.Key)
	return nil
}

// play runs a session from the stored resume position for opts.For of
// media time. Cancelling ctx pauses and saves the last position.
func play(ctx context.Context, store playback.PositionStore, doc *watch.Document, opts playOptions, log *slog.Logger) (playback.State, error) {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Speed <= 0 {
		opts.Speed = 1
	}

	sess := playback.NewSession(store, log)
	sess.Load(ctx, doc.Item.Slug, doc.Current)
	sess.Dispatch(playback.MetadataLoaded{Duration: playback.SampleVideoDuration})
	state := sess.Dispatch(playback.Play{})

	stopAndSave := func() (playback.State, error) {
		final := sess.Dispatch(playback.Pause{})
		err := store.Set(context.WithoutCancel(ctx), final.Key, final.Position)
		sess.Unmount()
		if err != nil {
			return final, fmt.Errorf("save position: %w", err)
		}
		return final, nil
	}

	end := math.Min(state.Position+opts.For.Seconds(), state.Duration)
	step := opts.Interval.Seconds() * opts.Speed

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for state.Position < end {
		select {
		case <-ctx.Done():
			return stopAndSave()
		case <-ticker.C:
		}

		st, err := sess.Tick(ctx, math.Min(state.Position+step, end))
		if err != nil {
			if ctx.Err() != nil {
				return stopAndSave()
			}
			return st, err
		}
		state = st
		if opts.Progress != nil {
			opts.Progress(st)
		}
	}

	final := sess.Dispatch(playback.Pause{})
	sess.Unmount()
	return final, nil
}

func printWatchDocument(doc *watch.Document) {
	item := doc.Item
	fmt.Fprintf(stdout, "%s (%d) %.1f/5\n", item.Title, item.Year, doc.Rating)
	if doc.Current != nil {
		fmt.Fprintf(stdout, "  Now:     S%d E%d %s\n", doc.Current.SeasonNumber, doc.Current.Number, doc.Current.Name)
	}
	if doc.ResumePosition > 0 {
		fmt.Fprintf(stdout, "  Resume:  %s\n", formatClock(doc.ResumePosition))
	}

	for _, s := range doc.Seasons {
		marker := " "
		if s.Current {
			marker = "*"
		}
		fmt.Fprintf(stdout, "  %s %-20s %3d episodes\n", marker, truncate(s.Name, 20), s.EpisodeCount)
	}
	if doc.Playlist != nil {
		for _, ep := range doc.Playlist.Episodes {
			marker := " "
			if doc.Current != nil && ep.Number == doc.Current.Number {
				marker = ">"
			}
			fmt.Fprintf(stdout, "    %s %2d. %-40s %s\n", marker, ep.Number, truncate(ep.Name, 40), formatMinutes(ep.RuntimeMinutes))
		}
	}
	if doc.SeasonsUnavailable {
		fmt.Fprintln(stdout, "  Some seasons could not be loaded.")
	}
}

func printProgress(s playback.State) {
	fmt.Fprintf(stdout, "\r  %s / %s  %5.1f%%", formatClock(s.Position), formatClock(s.Duration), s.ProgressPercent())
}
