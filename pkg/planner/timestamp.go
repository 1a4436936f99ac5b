package planner

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	layoutISO     = "2006-01-02"
	layoutISOTime = "2006-01-02T15:04"
)

// Timestamp is a task deadline: a calendar date, optionally with a
// wall-clock time. It marshals back to the same shape it was parsed from.
type Timestamp struct {
	time.Time
}

// ParseDeadline parses a deadline in "2006-01-02" or "2006-01-02T15:04"
// form, interpreted in local time.
func ParseDeadline(v string) (Timestamp, error) {
	for _, layout := range []string{layoutISOTime, layoutISO} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("%w: bad deadline %q", ErrValidation, v)
}

func (t Timestamp) String() string {
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.Format(layoutISO)
	}
	return t.Format(layoutISOTime)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDeadline(v)
	if err != nil {
		return err
	}
	t.Time = parsed.Time
	return nil
}
