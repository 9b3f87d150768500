package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"slate/internal/pager"
	"slate/internal/subtitle"
)

var compareCmd = &cobra.Command{
	Use:   "compare [subtitle_file] [subtitle_file]",
	Short: "Compare two subtitle files side by side",
	Long: `Render the entries of two SRT files side by side, paired by position
up to the length of the shorter file.

Interactive mode pages through the pairs one at a time; it is disabled
when stdout is not a terminal.

Examples:
  slate sub compare movie.en.srt movie.de.srt
  slate sub compare -i original.srt shifted.srt`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	subCmd.AddCommand(compareCmd)

	compareCmd.Flags().
		BoolP("interactive", "i", false, "Page through entry pairs one at a time")
}

func runCompare(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")

	left, err := subtitle.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	right, err := subtitle.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}

	if interactive && !stdoutIsTerminal() {
		logger.Warnw("Interactive mode disabled, stdout is not a terminal")
		interactive = false
	}

	return pager.New(cmd.OutOrStdout(), cmd.InOrStdin(), interactive).
		Compare(left, right)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
