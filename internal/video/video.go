package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"slate/internal/mediatool"
)

// defines interface for video container operations
type Processor interface {
	// extracts a subtitle stream from a video container
	ExtractSubtitle(
		ctx context.Context,
		videoPath, outputPath string,
		opts ExtractSubtitleOptions,
	) error
}

// holds options for subtitle extraction
type ExtractSubtitleOptions struct {
	// StreamIndex selects among the container's subtitle streams
	// (0 is the first subtitle stream, not the first stream overall).
	StreamIndex int
}

// returns sensible defaults for subtitle extraction
func DefaultExtractSubtitleOptions() ExtractSubtitleOptions {
	return ExtractSubtitleOptions{StreamIndex: 0}
}

// default implementation using ffmpeg
type DefaultProcessor struct {
	runner *mediatool.Runner
}

func NewProcessor(runner *mediatool.Runner) *DefaultProcessor {
	return &DefaultProcessor{runner: runner}
}

// extracts a subtitle stream from a video container without
// re-encoding it
func (p *DefaultProcessor) ExtractSubtitle(
	ctx context.Context,
	videoPath, outputPath string,
	opts ExtractSubtitleOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := p.runner.Look(mediatool.ToolFFmpeg)
	if err != nil {
		return err
	}

	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", opts.StreamIndex), // subtitle stream only
		"c":   "copy",                                  // no re-encode
	}

	err = ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg extraction failed: %w", err)
	}

	return nil
}
