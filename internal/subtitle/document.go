package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// OverlapMode selects which entry of an overlapping pair keeps its
// timing during repair.
type OverlapMode int

const (
	// KeepFirst keeps the earlier entry and pushes the later begin
	// up to the earlier end.
	KeepFirst OverlapMode = iota
	// KeepSecond keeps the later entry and pulls the earlier end
	// down to the later begin.
	KeepSecond
)

func (m OverlapMode) String() string {
	switch m {
	case KeepFirst:
		return "keep-first"
	case KeepSecond:
		return "keep-second"
	default:
		return fmt.Sprintf("overlap-mode(%d)", int(m))
	}
}

// ParseOverlapMode accepts the long names and the numeric shorthands
// "1" (keep-first) and "2" (keep-second).
func ParseOverlapMode(value string) (OverlapMode, error) {
	switch value {
	case "keep-first", "1":
		return KeepFirst, nil
	case "keep-second", "2":
		return KeepSecond, nil
	default:
		return 0, fmt.Errorf(
			"unknown overlap mode %q (want keep-first or keep-second)",
			value,
		)
	}
}

// Entry is a single cue: its file index, display window, and text.
type Entry struct {
	Index int
	Range TimeRange
	Text  string
}

// Lines returns the entry the way it renders in the file: index line,
// timestamp line, text block.
func (e Entry) Lines() []string {
	return []string{strconv.Itoa(e.Index), e.Range.String(), e.Text}
}

// Document is an ordered sequence of entries in file order. Indices
// are kept as parsed: they need not be contiguous, sorted, or unique.
type Document struct {
	entries []Entry
}

func (d *Document) Len() int {
	return len(d.entries)
}

// Entry returns a copy of the i-th entry in file order.
func (d *Document) Entry(i int) Entry {
	return d.entries[i]
}

// Read parses an SRT stream in one pass. Whitespace-only lines between
// entries are skipped and index lines are trimmed before parsing; the
// final entry does not require a trailing blank line. A leading UTF-8
// BOM is tolerated.
func Read(r io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(r)
	var entries []Entry
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		index, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return nil, &ParseTextError{Text: line}
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read subtitle stream: %w", err)
			}
			return nil, &ParseTextError{Text: "missing timestamp line"}
		}
		timeRange, err := ParseTimeRange(scanner.Text())
		if err != nil {
			return nil, err
		}
		var textLines []string
		for scanner.Scan() {
			text := scanner.Text()
			// a whitespace-only line separates entries just like an
			// empty one
			if strings.TrimSpace(text) == "" {
				break
			}
			textLines = append(textLines, text)
		}
		entries = append(entries, Entry{
			Index: int(index),
			Range: timeRange,
			Text:  strings.Join(textLines, newline),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subtitle stream: %w", err)
	}
	return &Document{entries: entries}, nil
}

// ReadFile parses the SRT file at path.
func ReadFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer file.Close()
	return Read(file)
}

// Write serializes the document: per entry an index line, a timestamp
// line, the text block, and one blank separator line. Output is
// flushed before returning.
func (d *Document) Write(w io.Writer) error {
	writer := bufio.NewWriter(w)
	for _, entry := range d.entries {
		_, err := fmt.Fprintf(
			writer,
			"%d\n%s\n%s\n\n",
			entry.Index,
			entry.Range,
			entry.Text,
		)
		if err != nil {
			return fmt.Errorf("failed to write subtitle stream: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write subtitle stream: %w", err)
	}
	return nil
}

// WriteFile serializes the document to the file at path, replacing
// any existing content.
func (d *Document) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create SRT file: %w", err)
	}
	if err := d.Write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write SRT file: %w", err)
	}
	return nil
}

// HasOverlap reports whether any entry begins before the previous one
// ends. Empty and single-entry documents never overlap.
func (d *Document) HasOverlap() bool {
	for i := 1; i < len(d.entries); i++ {
		if d.entries[i].Range.Begin < d.entries[i-1].Range.End {
			return true
		}
	}
	return false
}

type plannedFix struct {
	index   int
	ts      time.Duration
	isBegin bool
}

// RepairOverlaps resolves every overlapping adjacent pair in two
// phases: plan all fixes against the current values, then commit them
// together. A plan that would leave any entry with a negative duration
// fails with an OverlapError and nothing is committed. Zero durations
// are permitted.
func (d *Document) RepairOverlaps(mode OverlapMode) error {
	if !d.HasOverlap() {
		return nil
	}
	var plan []plannedFix
	for i := 1; i < len(d.entries); i++ {
		prev := d.entries[i-1].Range
		curr := d.entries[i].Range
		if curr.Begin >= prev.End {
			continue
		}
		switch mode {
		case KeepFirst:
			if prev.End > curr.End {
				return &OverlapError{Mode: mode, Prev: prev, Curr: curr}
			}
			plan = append(plan, plannedFix{index: i, ts: prev.End, isBegin: true})
		case KeepSecond:
			if curr.Begin < prev.Begin {
				return &OverlapError{Mode: mode, Prev: prev, Curr: curr}
			}
			plan = append(plan, plannedFix{index: i - 1, ts: curr.Begin})
		}
	}
	for _, fix := range plan {
		entry := &d.entries[fix.index]
		if fix.isBegin {
			entry.Range.Begin = fix.ts
		} else {
			entry.Range.End = fix.ts
		}
	}
	return nil
}

// Adjust shifts every entry by delta and then repairs any overlaps
// with the given mode. A negative delta skips entries that begin too
// early to absorb it, leaving them untouched rather than clamping
// them to zero. If a shifted bound leaves the representable range the
// call fails with ErrInvalidTimestamp; entries shifted before the
// failure stay shifted, so the document must be discarded.
func (d *Document) Adjust(delta time.Duration, mode OverlapMode) error {
	shift := delta
	add := delta > 0
	if shift < 0 {
		shift = -shift
	}
	for i := range d.entries {
		entry := &d.entries[i]
		if add {
			entry.Range.Begin += shift
			entry.Range.End += shift
		} else if entry.Range.Begin >= shift {
			entry.Range.Begin -= shift
			entry.Range.End -= shift
		}
		// skipped entries are checked too, not just shifted ones
		if !entry.Range.Valid() {
			return ErrInvalidTimestamp
		}
	}
	return d.RepairOverlaps(mode)
}
