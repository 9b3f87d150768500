package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"slate/internal/mediatool"
)

var streamsCmd = &cobra.Command{
	Use:   "streams [video_file]",
	Short: "List subtitle streams in a video file",
	Long: `List the subtitle streams a video container carries, with codec,
duration, language and title metadata.

Examples:
  slate sub streams movie.mkv
  slate sub streams movie.mkv --format json
  slate sub streams movie.mkv --format list`,
	Args: cobra.ExactArgs(1),
	RunE: runStreams,
}

func init() {
	subCmd.AddCommand(streamsCmd)

	streamsCmd.Flags().
		StringP("format", "f", "table", "Output format (table, json, list)")
}

func runStreams(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	format, _ := cmd.Flags().GetString("format")

	switch format {
	case "table", "tab", "json", "list":
	default:
		return fmt.Errorf(
			"invalid format %q: supported formats are table, json, list",
			format,
		)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner := mediatool.NewRunner(cfg.Tools.SearchDir)
	streams, err := runner.SubtitleStreams(cmd.Context(), videoPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(streams) == 0 {
		if format == "json" {
			fmt.Fprintln(out, "[]")
			return nil
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "no subtitle streams found")
		return nil
	}

	switch format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(streams)
	case "list":
		for _, stream := range streams {
			fmt.Fprintln(out, streamLine(stream))
		}
	default:
		fmt.Fprintln(out, streamsTable(streams))
	}
	return nil
}

func streamLine(stream mediatool.Stream) string {
	return fmt.Sprintf(
		"Index(%d) Codec Name(%s) Duration(%dms) Language(%s) Title(%s)",
		stream.Index,
		stream.Codec,
		stream.Duration,
		orUnknown(stream.Language),
		orUnknown(stream.Title),
	)
}

func streamsTable(streams []mediatool.Stream) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Index", "Codec Name", "Duration(ms)", "Language", "Title"})
	for _, stream := range streams {
		tw.AppendRow(table.Row{
			stream.Index,
			stream.Codec,
			stream.Duration,
			orUnknown(stream.Language),
			orUnknown(stream.Title),
		})
	}
	return tw.Render()
}

func orUnknown(value string) string {
	return lo.Ternary(value == "", "N/A", value)
}
