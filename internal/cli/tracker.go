package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/tracker"
)

var trackerCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Tracker list utilities",
}

var trackerUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch the tracker list when the upstream copy is newer",
	Long: `Fetch the configured tracker list and write it to the configured
output path, recording the upstream Last-Modified stamp in a
checkpoint file. Nothing is written when the upstream copy is not
newer than the last recorded stamp.`,
	Args: cobra.NoArgs,
	RunE: runTrackerUpdate,
}

func init() {
	rootCmd.AddCommand(trackerCmd)
	trackerCmd.AddCommand(trackerUpdateCmd)
}

func runTrackerUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fetcher := tracker.NewFetcher(tracker.Options{
		URL:            cfg.Tracker.URL,
		OutputPath:     cfg.Tracker.OutputPath,
		CheckpointPath: cfg.Tracker.CheckpointPath,
		Timeout:        time.Duration(cfg.Tracker.RequestTimeout) * time.Second,
	})

	stamp, err := fetcher.Update(cmd.Context())
	if errors.Is(err, tracker.ErrUpToDate) {
		logger.Infow("Tracker list is already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("tracker update failed: %w", err)
	}

	logger.Infow("Tracker list updated",
		"output", cfg.Tracker.OutputPath,
		"modified", stamp.Format(time.RFC1123),
	)
	fmt.Printf("Tracker list updated: %s\n", cfg.Tracker.OutputPath)
	return nil
}
