package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"logofetch/pkg/config"
	"logofetch/pkg/fetcher"
	"logofetch/pkg/logger"
	"logofetch/pkg/sofascore"
	"logofetch/pkg/storage"
	"logofetch/pkg/teams"
	"logofetch/pkg/ui"
)

// outputDir is where logos are written. It is not user configurable.
var outputDir = "."

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download every team logo into the current directory",
	Long: `Download the logo of every team in the built-in table and save it as
<id>.png in the current directory, overwriting any existing file.

This is the same as running logofetch without a subcommand.`,
	Example: `  # Download all logos
  logofetch fetch

  # Allow slow responses and show request logs
  logofetch fetch --timeout 30s --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log := logger.GetLogger().WithField("run_id", uuid.NewString())
	table := teams.Default()
	warnDuplicates(log, teams.DefaultDuplicates())

	// Download outcomes never change the exit code
	_, err = fetchLogos(ctx, cfg, table, outputDir, cmd.OutOrStdout(), log)
	return err
}

// fetchLogos wires the client, storage and console together and runs one pass
func fetchLogos(ctx context.Context, cfg *config.Config, table *teams.Table, dir string, out io.Writer, log logger.Logger) (fetcher.Summary, error) {
	store, err := storage.NewManager(dir)
	if err != nil {
		return fetcher.Summary{}, fmt.Errorf("failed to prepare output directory: %w", err)
	}

	client := sofascore.NewClient(cfg.SofaScore.Timeout, log,
		sofascore.WithBaseURL(cfg.SofaScore.BaseURL),
		sofascore.WithUserAgent(cfg.SofaScore.UserAgent),
	)
	if cfg.SofaScore.Referer != "" {
		client.SetHeader("Referer", cfg.SofaScore.Referer)
	}
	if cfg.SofaScore.Accept != "" {
		client.SetHeader("Accept", cfg.SofaScore.Accept)
	}

	logger.LogComponentStart(log, "fetcher", map[string]interface{}{
		"base_url":   client.BaseURL(),
		"timeout":    cfg.SofaScore.Timeout.String(),
		"output_dir": store.GetOutputDir(),
		"teams":      table.Len(),
	})

	console := ui.NewConsole(out, cfg.Output.Color, cfg.Output.ReminderDir)
	reporter := fetcher.NewReporter(fetcher.NewDownloader(client, store, log), console, log)

	return reporter.Run(ctx, table), nil
}

// warnDuplicates logs each id the embedded table lists more than once
func warnDuplicates(log logger.Logger, dups []teams.Duplicate) {
	for _, d := range dups {
		log.WarnWithFields("Duplicate team id in table, later name wins", map[string]interface{}{
			"team_id":  d.ID,
			"previous": d.Previous,
			"current":  d.Current,
		})
	}
}
