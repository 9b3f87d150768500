package mediatool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	ToolFFmpeg  = "ffmpeg"
	ToolFFprobe = "ffprobe"
)

// CommandError reports a tool that ran but exited non-zero.
type CommandError struct {
	Tool       string
	ExitStatus int
	Stderr     string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf(
		"%s exited with status %d: %s",
		e.Tool,
		e.ExitStatus,
		strings.TrimSpace(e.Stderr),
	)
}

// Runner locates and spawns the external media binaries. The zero
// value resolves tools from PATH.
type Runner struct {
	searchDir string
}

// NewRunner returns a runner that resolves tools from searchDir when
// it is non-empty and from PATH otherwise.
func NewRunner(searchDir string) *Runner {
	return &Runner{searchDir: searchDir}
}

// Look resolves the binary for tool. Environment overrides win, then
// the configured search directory (which must contain the tool, there
// is no fallthrough), then PATH.
func (r *Runner) Look(tool string) (string, error) {
	if override := os.Getenv(envOverride(tool)); override != "" {
		return override, nil
	}
	if r.searchDir != "" {
		return findInDir(r.searchDir, tool)
	}
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("failed to locate %s: %w", tool, err)
	}
	return path, nil
}

// Run executes the tool with args and returns its captured stdout and
// stderr. A non-zero exit becomes a *CommandError carrying the exit
// status and stderr.
func (r *Runner) Run(
	ctx context.Context,
	tool string,
	args ...string,
) (string, string, error) {
	path, err := r.Look(tool)
	if err != nil {
		return "", "", err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), stderr.String(), &CommandError{
				Tool:       tool,
				ExitStatus: exitErr.ExitCode(),
				Stderr:     stderr.String(),
			}
		}
		return "", "", fmt.Errorf("failed to run %s: %w", tool, err)
	}
	return stdout.String(), stderr.String(), nil
}

func envOverride(tool string) string {
	return "SLATE_" + strings.ToUpper(tool) + "_PATH"
}

func findInDir(dir, tool string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read tool directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == tool || strings.EqualFold(name, tool+".exe") {
			return filepath.Join(dir, name), nil
		}
	}
	return "", fmt.Errorf("%s not found in %s", tool, dir)
}
