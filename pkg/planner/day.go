package planner

import (
	"fmt"
	"strings"
)

// Day is a schedulable weekday. The planner covers Monday through Friday.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
)

// Weekdays returns the schedulable days in display order.
func Weekdays() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// ParseDay accepts a full weekday name or a three-letter prefix,
// case-insensitive.
func ParseDay(s string) (Day, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Weekdays() {
		name := strings.ToLower(string(d))
		if in == name || (len(in) == 3 && strings.HasPrefix(name, in)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: unknown day %q", ErrValidation, s)
}

func (d Day) String() string {
	return string(d)
}
