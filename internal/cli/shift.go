package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"slate/internal/fileutil"
	"slate/internal/subtitle"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file...]",
	Short: "Shift subtitle timing by a fixed offset",
	Long: `Shift every timestamp in one or more SRT files by the given number of
milliseconds, then repair any overlaps the shift produced.

A negative offset skips entries that begin earlier than the offset
instead of clamping them to zero.

Examples:
  slate sub shift movie.srt --ms 1500 --overlap-mode keep-first
  slate sub shift movie.srt --ms -2000 --overlap-mode 2 -o fixed.srt
  slate sub shift season1/*.srt --ms 800 --overlap-mode keep-second`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShift,
}

func init() {
	subCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		Int64("ms", 0, "Offset in milliseconds (may be negative)")
	shiftCmd.Flags().
		String("overlap-mode", "", "Overlap repair mode: keep-first (1) or keep-second (2)")
	shiftCmd.Flags().
		StringP("output", "o", "", "Output file path (single input only)")
	shiftCmd.Flags().
		Int("concurrency", 4, "Number of files to process in parallel")
	_ = shiftCmd.MarkFlagRequired("ms")
	_ = shiftCmd.MarkFlagRequired("overlap-mode")
}

func runShift(cmd *cobra.Command, args []string) error {
	ms, _ := cmd.Flags().GetInt64("ms")
	modeValue, _ := cmd.Flags().GetString("overlap-mode")
	outputPath, _ := cmd.Flags().GetString("output")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	mode, err := subtitle.ParseOverlapMode(modeValue)
	if err != nil {
		return err
	}
	if outputPath != "" && len(args) > 1 {
		return errors.New("--output is only valid with a single input file")
	}
	if concurrency < 1 {
		concurrency = 1
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	delta := time.Duration(ms) * time.Millisecond

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(concurrency)
	for _, path := range args {
		path := path
		target := outputPath
		if target == "" {
			target = fileutil.SiblingWithSuffix(path, cfg.Subtitles.OutputSuffix, "_")
		}
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return shiftFile(path, target, delta, mode)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	fmt.Printf("Adjusted %d subtitle file(s)\n", len(args))
	return nil
}

func shiftFile(path, target string, delta time.Duration, mode subtitle.OverlapMode) error {
	doc, err := subtitle.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := doc.Adjust(delta, mode); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := doc.WriteFile(target); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logger.Infow("Adjusted subtitles",
		"input", path,
		"output", target,
		"entries", doc.Len(),
		"ms", delta.Milliseconds(),
		"mode", mode.String(),
	)
	return nil
}
