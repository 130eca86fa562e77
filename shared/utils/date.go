package utils

import "time"

// DateFallback is returned for absent or unparseable date values.
const DateFallback = "N/A"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate renders a date-like value (time.Time or ISO-8601 string) as
// "YYYY-MM-DD", or "YYYY-MM-DD HH:MM:SS" when withTime is set. Only UTC
// components are used, so the output never depends on the process time zone.
func FormatDate(v interface{}, withTime bool) string {
	var t time.Time
	switch d := v.(type) {
	case time.Time:
		t = d
	case *time.Time:
		if d == nil {
			return DateFallback
		}
		t = *d
	case string:
		parsed, ok := parseDate(d)
		if !ok {
			return DateFallback
		}
		t = parsed
	default:
		return DateFallback
	}

	if t.IsZero() {
		return DateFallback
	}

	if withTime {
		return t.UTC().Format("2006-01-02 15:04:05")
	}
	return t.UTC().Format("2006-01-02")
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		// Date-only layouts parse in UTC, which is what we format in anyway.
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
