package helpers

import (
	"strconv"
	"strings"
	"time"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts ISO-8601-like strings. Unparsable or empty
// input yields nil rather than an error; malformed dates are dropped.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseBoolFilter normalizes query-string booleans. true/1/yes and
// false/0/no map to a value; anything else is ignored, not an error.
func ParseBoolFilter(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		v := true
		return &v
	case "false", "0", "no":
		v := false
		return &v
	}
	return nil
}
