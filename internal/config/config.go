package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools configures how the external media binaries are located.
type Tools struct {
	// SearchDir, when set, is the only place ffmpeg and ffprobe are
	// looked for besides explicit environment overrides.
	SearchDir string `toml:"search_dir"`
}

// Tracker configures the tracker list update.
type Tracker struct {
	URL            string `toml:"url"`
	OutputPath     string `toml:"output_path"`
	CheckpointPath string `toml:"checkpoint_path"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Subtitles configures subtitle file handling.
type Subtitles struct {
	// OutputSuffix is appended to the stem of adjusted subtitle
	// files: movie.srt becomes movie_mod.srt.
	OutputSuffix string `toml:"output_suffix"`
}

// Config is the full slate configuration.
type Config struct {
	Tools     Tools     `toml:"tools"`
	Tracker   Tracker   `toml:"tracker"`
	Subtitles Subtitles `toml:"subtitles"`
}

// DefaultPath returns the expanded default config file location.
func DefaultPath() (string, error) {
	return ExpandPath("~/.config/slate/config.toml")
}

// Load parses and validates the configuration file at path. An empty
// path falls back to the default location; a missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved, exists, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()
		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolvePath(path string) (string, bool, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return expanded, true, nil
}

func (c *Config) normalize() error {
	for _, field := range []*string{
		&c.Tools.SearchDir,
		&c.Tracker.OutputPath,
		&c.Tracker.CheckpointPath,
	} {
		expanded, err := ExpandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}

// Validate checks that every required field carries a usable value.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tracker.URL) == "" {
		return errors.New("tracker.url must not be empty")
	}
	if strings.TrimSpace(c.Tracker.OutputPath) == "" {
		return errors.New("tracker.output_path must not be empty")
	}
	if strings.TrimSpace(c.Tracker.CheckpointPath) == "" {
		return errors.New("tracker.checkpoint_path must not be empty")
	}
	if c.Tracker.RequestTimeout <= 0 {
		return errors.New("tracker.request_timeout must be positive")
	}
	if strings.TrimSpace(c.Subtitles.OutputSuffix) == "" {
		return errors.New("subtitles.output_suffix must not be empty")
	}
	return nil
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading ~ against the current user's home
// directory. Other values pass through untouched.
func ExpandPath(value string) (string, error) {
	if value == "" || value[0] != '~' {
		return value, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if value == "~" {
		return home, nil
	}
	if strings.HasPrefix(value, "~/") {
		return filepath.Join(home, value[2:]), nil
	}
	return "", fmt.Errorf("unsupported home expansion in %q", value)
}
