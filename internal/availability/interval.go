package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the exclusive upper bound for interval ends. An interval
// ending at midnight of the next day has End == MinutesPerDay.
const MinutesPerDay = 1440

var ErrInvalidInterval = fmt.Errorf("invalid time interval")

// TimeOfDay is a clock time expressed as minutes since midnight.
// Using integer minutes instead of "HH:MM" strings avoids lexical
// comparison bugs at hour boundaries ("9:00" vs "09:00").
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
// Seconds are ignored.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("parse time of day %q: expected HH:MM", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse time of day %q: out of range", s)
	}

	return TimeOfDay(h*60 + m), nil
}

// String formats the time as "HH:MM". MinutesPerDay renders as "24:00" so a
// slot ending at midnight stays on the same calendar date in responses.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// TimeInterval is a half-open clock interval [Start, End) within one day.
type TimeInterval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewTimeInterval builds a validated interval. Zero-length and
// wrap-past-midnight intervals are rejected.
func NewTimeInterval(start, end TimeOfDay) (TimeInterval, error) {
	if start < 0 || end > MinutesPerDay || end <= start {
		return TimeInterval{}, fmt.Errorf("%w: [%d, %d)", ErrInvalidInterval, start, end)
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps reports whether the two half-open intervals intersect. Adjacent
// intervals (one ending exactly where the other starts) do not overlap.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Contains reports whether the point falls inside [Start, End).
func (iv TimeInterval) Contains(p TimeOfDay) bool {
	return iv.Start <= p && p < iv.End
}

// Minutes returns the interval length in minutes.
func (iv TimeInterval) Minutes() int {
	return int(iv.End - iv.Start)
}
