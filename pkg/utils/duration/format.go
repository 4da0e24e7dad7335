// ABOUTME: Podcast duration parsing for itunes:duration values
// ABOUTME: Normalizes "HH:MM:SS", "MM:SS", plain seconds and Go durations to seconds

package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToSeconds converts an itunes:duration value to whole seconds.
// It reports false when the value is empty or unrecognized.
func ToSeconds(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	// Plain seconds
	if secs, err := strconv.Atoi(raw); err == nil {
		return secs, secs >= 0
	}

	// Go duration, e.g. "1h30m"
	if dur, err := time.ParseDuration(raw); err == nil {
		return int(dur.Seconds()), dur >= 0
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

// Format renders seconds as HH:MM:SS, or MM:SS under an hour.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
