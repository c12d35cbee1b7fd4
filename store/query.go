package store

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/robertmeta/heca-cli/model"
)

// spanPattern matches span strings like "7d", "2w", "3m", "1y"
var spanPattern = regexp.MustCompile(`^(\d+)([dwmy])$`)

// AddSpan moves t forward by a span string like "7d", "2w", "3m", "1y".
//
// Supported units:
//   - d: days
//   - w: weeks (7 days)
//   - m: calendar months
//   - y: calendar years
func AddSpan(t time.Time, s string) (time.Time, error) {
	if s == "" {
		return t, fmt.Errorf("span string is empty")
	}

	matches := spanPattern.FindStringSubmatch(s)
	if matches == nil {
		return t, fmt.Errorf("invalid span format: %s (expected format: <number><unit>, e.g., 7d, 2w, 3m, 1y)", s)
	}

	num, err := strconv.Atoi(matches[1])
	if err != nil {
		return t, fmt.Errorf("invalid number in span: %s", matches[1])
	}

	switch matches[2] {
	case "d":
		return t.AddDate(0, 0, num), nil
	case "w":
		return t.AddDate(0, 0, 7*num), nil
	case "m":
		return t.AddDate(0, num, 0), nil
	default:
		return t.AddDate(num, 0, 0), nil
	}
}

// ParseDay parses "2006-01-02" or "today" into the instant the Hebrew day
// falling on that civil date begins: 18:00 UTC of the evening before.
func ParseDay(s string, now time.Time) (time.Time, error) {
	var d time.Time
	if strings.EqualFold(s, "today") {
		d = now.UTC()
	} else {
		var err error
		d, err = time.Parse(time.DateOnly, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or today): %w", s, err)
		}
	}
	return time.Date(d.Year(), d.Month(), d.Day()-1, 18, 0, 0, 0, time.UTC), nil
}

// ParseKind resolves a label kind name such as "MinorHoliday", ignoring case.
func ParseKind(s string) (string, error) {
	for k := model.KindTorahReading; k <= model.KindShabbosMevarchim; k++ {
		if strings.EqualFold(k.String(), s) {
			return k.String(), nil
		}
	}
	return "", fmt.Errorf("unknown event kind: %s", s)
}

// BuildQueryOptions constructs QueryOptions from CLI flags. An empty from
// with a span starts the span today.
func BuildQueryOptions(limit, offset int, exportID int64, kind, from, span string, now time.Time) (QueryOptions, error) {
	opts := QueryOptions{
		Limit:    limit,
		Offset:   offset,
		ExportID: exportID,
	}

	if kind != "" {
		name, err := ParseKind(kind)
		if err != nil {
			return opts, fmt.Errorf("failed to parse --kind flag: %w", err)
		}
		opts.Kind = name
	}

	if from == "" && span != "" {
		from = "today"
	}
	if from == "" {
		return opts, nil
	}

	start, err := ParseDay(from, now)
	if err != nil {
		return opts, fmt.Errorf("failed to parse --from flag: %w", err)
	}
	fromUnix := start.Unix()
	opts.From = &fromUnix

	if span != "" {
		end, err := AddSpan(start, span)
		if err != nil {
			return opts, fmt.Errorf("failed to parse --span flag: %w", err)
		}
		untilUnix := end.Unix()
		opts.Until = &untilUnix
	}

	return opts, nil
}
