// ABOUTME: Relative minute offsets between a feed timestamp and the current instant
// ABOUTME: The clock is injectable so callers and tests can pin "now"

package time

import (
	"math"
	"time"
)

// Clock returns the current instant.
type Clock func() time.Time

// Annotator converts timestamps into non-negative minute offsets from now.
type Annotator struct {
	now Clock
}

// NewAnnotator creates an annotator reading time from now.
// A nil clock falls back to time.Now.
func NewAnnotator(now Clock) *Annotator {
	if now == nil {
		now = time.Now
	}
	return &Annotator{now: now}
}

// MinutesFromISO returns the whole minutes from now until iso, rounded half
// up and clamped at zero, so timestamps in the past report 0.
//
// A nil result means "unknown": iso was empty or could not be parsed.
func (a *Annotator) MinutesFromISO(iso string) *int {
	if iso == "" {
		return nil
	}

	target, ok := ParseFlexibleTime(iso)
	if !ok {
		return nil
	}

	return a.MinutesUntil(target)
}

// MinutesUntil is MinutesFromISO for an already parsed instant.
func (a *Annotator) MinutesUntil(target time.Time) *int {
	// Millisecond arithmetic; time.Duration saturates past ~292 years.
	diff := float64(target.UnixMilli()-a.now().UnixMilli()) / 60000

	minutes := int(math.Floor(diff + 0.5))
	if minutes < 0 {
		minutes = 0
	}

	return &minutes
}

var wallClock = NewAnnotator(nil)

// MinutesFromISO annotates iso against the wall clock.
func MinutesFromISO(iso string) *int {
	return wallClock.MinutesFromISO(iso)
}
