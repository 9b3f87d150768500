package subtitle

import (
	"errors"
	"fmt"
)

// ErrInvalidTimestamp reports an adjustment that would move a bound
// outside the range the SubRip timestamp fields can carry.
var ErrInvalidTimestamp = errors.New(
	"adjustment would move a timestamp outside the srt range",
)

// malformed entry structure (index line, missing timestamp line)
type ParseTextError struct {
	Text string
}

func (e *ParseTextError) Error() string {
	return fmt.Sprintf("failed to parse entry text: %s", e.Text)
}

// malformed or out-of-range timestamp line
type ParseTimeError struct {
	Detail string
}

func (e *ParseTimeError) Error() string {
	return fmt.Sprintf("failed to parse timestamp: %s", e.Detail)
}

// OverlapError reports an overlapping pair no repair plan can satisfy
// without producing a negative duration.
type OverlapError struct {
	Mode OverlapMode
	Prev TimeRange
	Curr TimeRange
}

func (e *OverlapError) Error() string {
	entry := "current"
	if e.Mode == KeepSecond {
		entry = "previous"
	}
	return fmt.Sprintf(
		"fixing the %s entry would result in a negative duration: prev(%s) curr(%s)",
		entry,
		e.Prev,
		e.Curr,
	)
}
