package fileutil

import "testing"

func TestSiblingWithSuffix(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "movie.srt", want: "movie_mod.srt"},
		{path: "/a/b/movie.srt", want: "/a/b/movie_mod.srt"},
		{path: "movie.en.srt", want: "movie.en_mod.srt"},
		{path: "movie", want: "movie_mod"},
	}
	for _, tt := range tests {
		if got := SiblingWithSuffix(tt.path, "mod", "_"); got != tt.want {
			t.Errorf("SiblingWithSuffix(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestWithExt(t *testing.T) {
	tests := []struct {
		path string
		ext  string
		want string
	}{
		{path: "movie.mkv", ext: ".srt", want: "movie.srt"},
		{path: "/a/movie.mp4", ext: ".srt", want: "/a/movie.srt"},
		{path: "movie", ext: ".srt", want: "movie.srt"},
	}
	for _, tt := range tests {
		if got := WithExt(tt.path, tt.ext); got != tt.want {
			t.Errorf("WithExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}
