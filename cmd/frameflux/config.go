package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/frameflux/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, values, and environment variable substitution without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
}

func runConfigTest(_ *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		p, err := config.Discover()
		if err != nil {
			return err
		}
		path = p
	}

	fmt.Fprintf(stdout, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(configErr)
			return errors.New("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(cfg)
	fmt.Fprintln(stdout, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(stdout, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(stdout, "  - %s\n", m)
		}
		fmt.Fprintln(stdout)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(stdout, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(stdout, "  - %s\n", err)
		}
		fmt.Fprintln(stdout)
	}
}

func printConfigSummary(cfg *config.Config) {
	enabled := func(ok bool) string {
		if ok {
			return "configured"
		}
		return "not configured"
	}

	ids := "default list"
	if len(cfg.Catalog.IDs) > 0 {
		ids = fmt.Sprintf("%d ids", len(cfg.Catalog.IDs))
	}

	fmt.Fprintln(stdout, "Configuration Summary:")
	fmt.Fprintf(stdout, "  Server:     %s (log: %s)\n", cfg.Addr(), cfg.Server.LogLevel)
	fmt.Fprintf(stdout, "  Database:   %s\n", cfg.Database.Path)
	fmt.Fprintf(stdout, "  OMDb:       %s\n", enabled(cfg.OMDb.APIKey != ""))
	fmt.Fprintf(stdout, "  TMDB:       %s\n", enabled(cfg.TMDB.APIKey != ""))
	fmt.Fprintf(stdout, "  Catalog:    %s, fallback %t\n", ids, cfg.Catalog.Fallback)
	fmt.Fprintf(stdout, "  Cache:      content %s, search %s\n", cfg.Cache.ContentTTL, cfg.Cache.SearchTTL)
	if cfg.RateLimit.Enabled {
		fmt.Fprintf(stdout, "  Rate limit: %.0f/s (burst %d)\n", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
}
