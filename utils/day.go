package utils

import (
	"encoding/json"
	"math"
	"time"
)

const dayLayout = "2006-01-02"

// Accepted string layouts for stored/user-provided dates. Records written by
// different clients historically carried any of these.
var dayStringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	dayLayout,
}

// NormalizeDay converts any accepted date representation into the canonical
// YYYY-MM-DD calendar-day key in UTC. It accepts time.Time, an ISO-8601
// string, or a structured timestamp map exposing seconds since epoch under
// "seconds" or "_seconds" (two spellings, from different write paths).
// Anything else yields "", which compares unequal to every valid day so a
// broken date never falsely matches "today". This is the single source of
// truth for day equality across write paths.
func NormalizeDay(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(dayLayout)
	case *time.Time:
		if t == nil {
			return ""
		}
		return NormalizeDay(*t)
	case string:
		for _, layout := range dayStringLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC().Format(dayLayout)
			}
		}
		return ""
	case map[string]any:
		for _, key := range []string{"seconds", "_seconds"} {
			if raw, ok := t[key]; ok {
				if sec, ok := epochSeconds(raw); ok {
					return time.Unix(sec, 0).UTC().Format(dayLayout)
				}
			}
		}
		return ""
	default:
		return ""
	}
}

func epochSeconds(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		sec, err := n.Int64()
		return sec, err == nil
	default:
		return 0, false
	}
}

// DayOf returns the canonical day key for a time, and WeekdayOf its English
// weekday name, both in UTC.
func DayOf(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

func WeekdayOf(t time.Time) string {
	return t.UTC().Weekday().String()
}

// Round2 rounds to 2 decimal places; Round3 to 3 (used for water values).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
