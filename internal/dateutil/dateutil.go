// Package dateutil resolves the "auto" date values accepted in configuration.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat is returned for malformed formats and auto values.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength bounds user supplied formats.
const MaxDateFormatLength = 50

// DefaultDateFormat is used by a bare "auto".
const DefaultDateFormat = "YYYY.MM.DD"

// dateTokens are matched longest first at each position.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets name common formats for "auto:NAME".
var DatePresets = map[string]string{
	"iso":    "YYYY-MM-DD",
	"dotted": "YYYY.MM.DD",
	"korean": "YYYY년 M월 D일",
	"long":   "MMMM D, YYYY",
}

// ParseDateFormat converts a YYYY/MM/DD style format to a Go layout.
// Text in square brackets is copied literally.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
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

		n := 1
		out := format[i : i+1]
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				n, out = len(t.token), t.goFmt
				break
			}
		}
		b.WriteString(out)
		i += n
	}
	return b.String(), nil
}

// ResolveDate returns value unchanged unless it is "auto" or "auto:FORMAT",
// in which case t is formatted with DefaultDateFormat or FORMAT. FORMAT may
// name a preset.
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultDateFormat
	switch {
	case lower == "auto":
	case strings.HasPrefix(lower, "auto:"):
		format = value[len("auto:"):]
		if format == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(format)]; ok {
			format = preset
		}
	default:
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
