package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"slate/internal/fileutil"
	"slate/internal/mediatool"
	"slate/internal/video"
)

var exportCmd = &cobra.Command{
	Use:   "export [video_file]",
	Short: "Export a subtitle stream from a video file",
	Long: `Export one subtitle stream from a video container into a standalone
SRT file without re-encoding.

Examples:
  slate sub export movie.mkv
  slate sub export movie.mkv --stream 1
  slate sub export movie.mkv -o movie.en.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	subCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream index (0 = first subtitle stream)")
	exportCmd.Flags().
		StringP("output", "o", "", "Output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	streamIndex, _ := cmd.Flags().GetInt("stream")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		outputPath = fileutil.WithExt(videoPath, ".srt")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Infow("Exporting subtitle stream",
		"video", videoPath,
		"output", outputPath,
		"stream", streamIndex,
	)

	processor := video.NewProcessor(mediatool.NewRunner(cfg.Tools.SearchDir))

	opts := video.DefaultExtractSubtitleOptions()
	opts.StreamIndex = streamIndex

	if err := processor.ExtractSubtitle(
		cmd.Context(),
		videoPath,
		outputPath,
		opts,
	); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle exported successfully: %s\n", absOutput)

	return nil
}
