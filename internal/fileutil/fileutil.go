package fileutil

import (
	"path/filepath"
	"strings"
)

// SiblingWithSuffix inserts sep+suffix between the stem and extension
// of path: ("movie.srt", "mod", "_") becomes "movie_mod.srt". A path
// without an extension gets the suffix appended.
func SiblingWithSuffix(path, suffix, sep string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + sep + suffix + ext
}

// WithExt replaces the extension of path: ("movie.mkv", ".srt")
// becomes "movie.srt".
func WithExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
