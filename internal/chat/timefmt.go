package chat

import (
	"fmt"
	"time"
)

// fallbackTimestamp is shown when a comment timestamp cannot be parsed.
const fallbackTimestamp = "??:??"

// FormatTimestamp renders an ISO comment timestamp either as a coarse
// relative bucket ("2 minutes ago") or as absolute HH:MM in the timestamp's
// own zone. Parse failures return the fallback placeholder and the error.
func FormatTimestamp(raw string, humanFriendly bool, now time.Time) (string, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fallbackTimestamp, fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	if !humanFriendly {
		return t.Format("15:04"), nil
	}
	return relativeTime(now.Sub(t)), nil
}

// relativeTime buckets an elapsed duration, rounding down.
func relativeTime(elapsed time.Duration) string {
	secs := int64(elapsed.Seconds())
	switch {
	case secs < 60:
		return "just now"
	case secs < 3600:
		return pluralize(secs/60, "minute")
	case secs < 86400:
		return pluralize(secs/3600, "hour")
	default:
		return pluralize(secs/86400, "day")
	}
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
