package config

const (
	defaultTrackerURL            = "https://raw.githubusercontent.com/ngosang/trackerslist/master/trackers_all.txt"
	defaultTrackerOutputPath     = "trackers_all.txt"
	defaultTrackerCheckpoint     = "~/.local/share/slate/tracker_update_record"
	defaultTrackerRequestTimeout = 30
	defaultSubtitleOutputSuffix  = "mod"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tracker: Tracker{
			URL:            defaultTrackerURL,
			OutputPath:     defaultTrackerOutputPath,
			CheckpointPath: defaultTrackerCheckpoint,
			RequestTimeout: defaultTrackerRequestTimeout,
		},
		Subtitles: Subtitles{
			OutputSuffix: defaultSubtitleOutputSuffix,
		},
	}
}
