// Package dateutil expands date placeholders in page text.
//
// A placeholder is {date} or {date:FORMAT}. FORMAT is either a preset name
// (iso, european, us, long) or a pattern built from the tokens YYYY, YY,
// MMMM, MMM, MM, M, DDDD, DDD, DD and D. Text in square brackets inside a
// pattern is copied literally.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates a malformed placeholder or pattern.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits the pattern inside one placeholder.
const MaxDateFormatLength = 50

// DefaultDateFormat is used by a bare {date}.
const DefaultDateFormat = "YYYY-MM-DD"

const (
	placeholderOpen = "{date"
	placeholderEnd  = "}"
)

// dateTokens maps pattern tokens to Go layout components, longest first so
// matching is greedy.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"DDDD", "Monday"},
	{"MMM", "Jan"},
	{"DDD", "Mon"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets are named shortcuts for common patterns.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Layout converts a pattern or preset name into a Go time layout.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				b.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}

	return b.String(), nil
}

// Expand replaces every {date} and {date:FORMAT} placeholder in text with t
// formatted accordingly. Text without placeholders is returned unchanged.
func Expand(text string, t time.Time) (string, error) {
	if !strings.Contains(text, placeholderOpen) {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text) + 16)

	rest := text
	for {
		start := strings.Index(rest, placeholderOpen)
		if start == -1 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:start])
		rest = rest[start+len(placeholderOpen):]

		end := strings.Index(rest, placeholderEnd)
		if end == -1 {
			return "", fmt.Errorf("%w: unclosed placeholder in %q", ErrInvalidDateFormat, text)
		}
		spec := rest[:end]
		rest = rest[end+len(placeholderEnd):]

		format := DefaultDateFormat
		switch {
		case spec == "":
		case strings.HasPrefix(spec, ":"):
			format = spec[1:]
		default:
			// "{dates}" and friends are ordinary text.
			b.WriteString(placeholderOpen + spec + placeholderEnd)
			continue
		}

		layout, err := Layout(format)
		if err != nil {
			return "", err
		}
		b.WriteString(t.Format(layout))
	}
}
