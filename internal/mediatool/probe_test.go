package mediatool

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const probeFixture = `{
    "streams": [
        {
            "index": 2,
            "codec_name": "subrip",
            "codec_type": "subtitle",
            "duration_ts": 5399555,
            "tags": {
                "language": "eng",
                "title": "English (SDH)"
            }
        },
        {
            "index": 3,
            "codec_name": "hdmv_pgs_subtitle",
            "codec_type": "subtitle",
            "duration_ts": 5400000
        }
    ]
}`

func TestParseProbeOutput(t *testing.T) {
	streams, err := parseProbeOutput([]byte(probeFixture))
	if err != nil {
		t.Fatalf("parseProbeOutput: %v", err)
	}
	if len(streams) != 2 {
		t.Fatalf("expected 2 streams, got %d", len(streams))
	}

	first := streams[0]
	if first.Index != 2 || first.Codec != "subrip" {
		t.Fatalf("unexpected first stream: %+v", first)
	}
	if first.Duration != 5399555 {
		t.Fatalf("unexpected duration: %d", first.Duration)
	}
	if first.Language != "eng" || first.Title != "English (SDH)" {
		t.Fatalf("tags not decoded: %+v", first)
	}

	second := streams[1]
	if second.Language != "" || second.Title != "" {
		t.Fatalf("missing tags should decode empty, got %+v", second)
	}
}

func TestParseProbeOutputNoStreams(t *testing.T) {
	streams, err := parseProbeOutput([]byte(`{"streams": []}`))
	if err != nil {
		t.Fatalf("parseProbeOutput: %v", err)
	}
	if len(streams) != 0 {
		t.Fatalf("expected no streams, got %d", len(streams))
	}
}

func TestParseProbeOutputBlank(t *testing.T) {
	for _, data := range []string{"", "   \n"} {
		streams, err := parseProbeOutput([]byte(data))
		if err != nil {
			t.Fatalf("parseProbeOutput(%q): %v", data, err)
		}
		if streams != nil {
			t.Fatalf("expected nil streams for %q", data)
		}
	}
}

func TestParseProbeOutputMalformed(t *testing.T) {
	_, err := parseProbeOutput([]byte("{"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse ffprobe output") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubtitleStreamsWithScriptedProbe(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	dir := t.TempDir()
	script := "#!/bin/sh\ncat <<'EOF'\n" + probeFixture + "\nEOF\n"
	scriptPath := filepath.Join(dir, ToolFFprobe)
	if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
		t.Fatalf("write probe script: %v", err)
	}

	runner := NewRunner(dir)
	streams, err := runner.SubtitleStreams(context.Background(), "ignored.mkv")
	if err != nil {
		t.Fatalf("SubtitleStreams: %v", err)
	}
	if len(streams) != 2 {
		t.Fatalf("expected 2 streams, got %d", len(streams))
	}
	if streams[0].Codec != "subrip" {
		t.Fatalf("unexpected codec: %q", streams[0].Codec)
	}
}
