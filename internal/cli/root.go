package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"slate/internal/config"
	"slate/internal/logging"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slate",
	Short: "Movie post-production housekeeping",
	Long: `Slate keeps the boring half of movie post-production moving:
shifting and repairing subtitle timing, exporting subtitle streams
from video containers, and keeping a local tracker list current.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// one id per invocation so batch output lines correlate
		logger = logging.NewLogger(verbose).With("run_id", uuid.NewString())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default ~/.config/slate/config.toml)")
}
