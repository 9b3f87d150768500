package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// SubRip carries two digits per hour field, so representable times
// stop just short of 100 hours.
const maxTimestamp = 100 * time.Hour

var (
	timeRangePattern = regexp.MustCompile(
		`^(\d{2}):(\d{2}):(\d{2}),(\d{3}) --> (\d{2}):(\d{2}):(\d{2}),(\d{3})$`,
	)
	timestampPattern = regexp.MustCompile(
		`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`,
	)
)

// TimeRange is the display window of a single entry.
type TimeRange struct {
	Begin time.Duration
	End   time.Duration
}

func (r TimeRange) Duration() time.Duration {
	return r.End - r.Begin
}

// Valid reports whether both bounds still fit the two-digit hour field.
func (r TimeRange) Valid() bool {
	return r.Begin < maxTimestamp && r.End < maxTimestamp
}

func (r TimeRange) String() string {
	return FormatTimestamp(r.Begin) + " --> " + FormatTimestamp(r.End)
}

// ParseTimeRange parses a timestamp line such as
// "00:01:02,300 --> 00:01:04,500".
func ParseTimeRange(line string) (TimeRange, error) {
	matches := timeRangePattern.FindStringSubmatch(line)
	if matches == nil {
		return TimeRange{}, &ParseTimeError{Detail: line}
	}
	begin, err := timestampFromFields(matches[1:5])
	if err != nil {
		return TimeRange{}, err
	}
	end, err := timestampFromFields(matches[5:9])
	if err != nil {
		return TimeRange{}, err
	}
	if end < begin {
		return TimeRange{}, &ParseTimeError{
			Detail: "endtime is greater then begintime",
		}
	}
	return TimeRange{Begin: begin, End: end}, nil
}

// ParseTimestamp parses a single timestamp such as "01:02:03,004".
func ParseTimestamp(value string) (time.Duration, error) {
	matches := timestampPattern.FindStringSubmatch(value)
	if matches == nil {
		return 0, &ParseTimeError{Detail: value}
	}
	return timestampFromFields(matches[1:5])
}

func timestampFromFields(fields []string) (time.Duration, error) {
	names := [4]string{"hour", "minute", "second", "millisecond"}
	var values [4]int
	for i, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return 0, &ParseTimeError{
				Detail: fmt.Sprintf("invalid %s value %s", names[i], field),
			}
		}
		values[i] = value
	}
	if values[0] > 99 || values[1] > 59 || values[2] > 59 || values[3] > 999 {
		return 0, &ParseTimeError{
			Detail: fmt.Sprintf(
				"invalid timestamp: %02d:%02d:%02d.%03d",
				values[0], values[1], values[2], values[3],
			),
		}
	}
	return time.Duration(values[0])*time.Hour +
		time.Duration(values[1])*time.Minute +
		time.Duration(values[2])*time.Second +
		time.Duration(values[3])*time.Millisecond, nil
}

// FormatTimestamp renders a duration as sign plus zero-padded
// H:MM:SS,mmm. Hours are not clamped to two digits: values past the
// SubRip ceiling keep their full width, which matters when printing
// intermediate arithmetic results.
func FormatTimestamp(d time.Duration) string {
	sign := ""
	millis := d.Milliseconds()
	if millis < 0 {
		sign = "-"
		millis = -millis
	}
	seconds := millis / 1000
	millis %= 1000
	minutes := seconds / 60
	seconds %= 60
	hours := minutes / 60
	minutes %= 60
	return fmt.Sprintf(
		"%s%02d:%02d:%02d,%03d",
		sign, hours, minutes, seconds, millis,
	)
}
