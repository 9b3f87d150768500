package mediatool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Stream describes one subtitle stream of a media container. Duration
// is in milliseconds; Language and Title are empty when the container
// carries no tags for them.
type Stream struct {
	Index    int    `json:"index"`
	Codec    string `json:"codec"`
	Duration int64  `json:"duration_ms"`
	Language string `json:"language"`
	Title    string `json:"title"`
}

type probeResult struct {
	Streams []probeStream `json:"streams"`
}

type probeStream struct {
	Index      int       `json:"index"`
	CodecName  string    `json:"codec_name"`
	CodecType  string    `json:"codec_type"`
	DurationTS int64     `json:"duration_ts"`
	Tags       probeTags `json:"tags"`
}

type probeTags struct {
	Language string `json:"language"`
	Title    string `json:"title"`
}

// SubtitleStreams probes path with ffprobe and returns its subtitle
// streams in container order. A container without subtitle streams
// yields an empty slice.
func (r *Runner) SubtitleStreams(
	ctx context.Context,
	path string,
) ([]Stream, error) {
	stdout, _, err := r.Run(ctx, ToolFFprobe,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-select_streams", "s",
		"--", path,
	)
	if err != nil {
		return nil, err
	}
	return parseProbeOutput([]byte(stdout))
}

func parseProbeOutput(data []byte) ([]Stream, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	var result probeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	return lo.Map(result.Streams, func(s probeStream, _ int) Stream {
		// matroska subtitle streams use a millisecond time base, so
		// duration_ts is already a millisecond count
		return Stream{
			Index:    s.Index,
			Codec:    s.CodecName,
			Duration: s.DurationTS,
			Language: s.Tags.Language,
			Title:    s.Tags.Title,
		}
	}), nil
}
