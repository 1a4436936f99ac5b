package planner

import (
	"fmt"
	"strings"
)

// Priority ranks how important a subject is.
type Priority string

const (
	Low    Priority = "low"
	Medium Priority = "medium"
	High   Priority = "high"
)

// ParsePriority accepts a priority name, case-insensitive. Empty input
// defaults to medium.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Medium, nil
	case "low", "l":
		return Low, nil
	case "medium", "med", "m":
		return Medium, nil
	case "high", "h":
		return High, nil
	}
	return "", fmt.Errorf("%w: unknown priority %q", ErrValidation, s)
}

func (p Priority) String() string {
	return string(p)
}
