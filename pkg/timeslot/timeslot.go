// Package timeslot provides wall-clock interval math for schedule slots.
package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedTime reports a clock string that does not parse as HH:MM.
var ErrMalformedTime = errors.New("timeslot: malformed time")

// MinutesPerDay bounds a clock offset; ParseClock never returns a value
// outside [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedTime, s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedTime, s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q: out of range", ErrMalformedTime, s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Duration returns end minus start in minutes. The result may be zero or
// negative when end is not after start; aggregate consumers clamp, they do
// not reject.
func Duration(start, end int) int {
	return end - start
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
