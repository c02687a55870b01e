package types

import (
	"regexp"
	"strings"
	"time"
)

// isoTimestampRE matches the timestamps the API emits. The remote service sometimes
// omits the zone, in which case group 1 is empty.
var isoTimestampRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(Z|[+-](?:\d{2}:\d{2}|\d{4}))?$`)

const (
	layoutColonOffset = "2006-01-02T15:04:05.999999999Z07:00"
	layoutBasicOffset = "2006-01-02T15:04:05.999999999Z0700"
)

// NormalizeTimestamp converts an API timestamp string into a time.Time.
// Timestamps without a zone are UTC, not local time. Anything that does not look
// like a timestamp, or fails to parse, is returned unchanged.
func NormalizeTimestamp(s string) any {
	match := isoTimestampRE.FindStringSubmatch(s)
	if match == nil {
		return s
	}

	value, zone := s, match[1]
	if zone == "" {
		value += "Z"
		zone = "Z"
	}

	layout := layoutColonOffset
	if zone != "Z" && !strings.Contains(zone, ":") {
		layout = layoutBasicOffset
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return s
	}
	return t
}

// NormalizeValue walks a decoded JSON value and normalizes every string in it
func NormalizeValue(v any) any {
	switch val := v.(type) {
	case string:
		return NormalizeTimestamp(val)
	case map[string]any:
		for k, item := range val {
			val[k] = NormalizeValue(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = NormalizeValue(item)
		}
		return val
	default:
		return v
	}
}
