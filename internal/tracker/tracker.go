package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// ErrUpToDate reports that the remote list is not newer than the last
// recorded update.
var ErrUpToDate = errors.New("tracker list is already up to date")

// checkpoint lines look like "2025-07-22 18:30:05 +0000"
const checkpointLayout = "2006-01-02 15:04:05 -0700"

// Options configures a Fetcher.
type Options struct {
	URL            string
	OutputPath     string
	CheckpointPath string
	Timeout        time.Duration
}

// Fetcher downloads a remote tracker list, guarded by a local
// checkpoint file holding the last seen upstream modification time.
type Fetcher struct {
	client         *http.Client
	url            string
	outputPath     string
	checkpointPath string
}

func NewFetcher(opts Options) *Fetcher {
	return &Fetcher{
		client:         &http.Client{Timeout: opts.Timeout},
		url:            opts.URL,
		outputPath:     opts.OutputPath,
		checkpointPath: opts.CheckpointPath,
	}
}

// Update fetches the tracker list and writes it to the output path if
// the remote copy is newer than the checkpoint, then appends the new
// modification time to the checkpoint. Returns ErrUpToDate when the
// remote copy is not newer. Concurrent updates are serialized through
// a lock file next to the checkpoint.
func (f *Fetcher) Update(ctx context.Context) (time.Time, error) {
	for _, path := range []string{f.checkpointPath, f.outputPath} {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return time.Time{}, fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	lock := flock.New(f.checkpointPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to acquire update lock: %w", err)
	}
	if !locked {
		return time.Time{}, errors.New("another tracker update is already running")
	}
	defer func() {
		_ = lock.Unlock()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to build tracker request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to fetch tracker list: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return time.Time{}, fmt.Errorf("unexpected status fetching tracker list: %s", resp.Status)
	}

	header := resp.Header.Get("Last-Modified")
	if header == "" {
		return time.Time{}, errors.New("tracker response carries no Last-Modified header")
	}
	remote, err := http.ParseTime(header)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse Last-Modified header %q: %w", header, err)
	}

	last, err := f.lastRecorded()
	if err != nil {
		return time.Time{}, err
	}
	if !last.IsZero() && !remote.After(last) {
		return time.Time{}, ErrUpToDate
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read tracker list: %w", err)
	}
	if err := os.WriteFile(f.outputPath, body, 0o644); err != nil {
		return time.Time{}, fmt.Errorf("failed to write tracker list: %w", err)
	}
	if err := f.appendCheckpoint(remote); err != nil {
		return time.Time{}, err
	}
	return remote, nil
}

// lastRecorded returns the stamp on the last non-empty checkpoint
// line, or the zero time when no checkpoint exists yet.
func (f *Fetcher) lastRecorded() (time.Time, error) {
	data, err := os.ReadFile(f.checkpointPath)
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read checkpoint: %w", err)
	}
	line := lastNonEmptyLine(string(data))
	if line == "" {
		return time.Time{}, nil
	}
	stamp, err := time.Parse(checkpointLayout, line)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse checkpoint line %q: %w", line, err)
	}
	return stamp, nil
}

func (f *Fetcher) appendCheckpoint(stamp time.Time) error {
	file, err := os.OpenFile(
		f.checkpointPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return fmt.Errorf("failed to open checkpoint: %w", err)
	}
	if _, err := fmt.Fprintf(file, "%s\n", stamp.Format(checkpointLayout)); err != nil {
		file.Close()
		return fmt.Errorf("failed to append checkpoint: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close checkpoint: %w", err)
	}
	return nil
}

func lastNonEmptyLine(content string) string {
	lines := strings.Split(content, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
