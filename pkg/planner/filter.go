package planner

import (
	"fmt"
	"strings"
)

// Status selects tasks by completion for list views.
type Status string

const (
	StatusAll       Status = "all"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ParseStatus accepts a status filter name, case-insensitive. Empty input
// means all.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return StatusAll, nil
	case "pending", "todo", "open":
		return StatusPending, nil
	case "completed", "complete", "done":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
}

// Filter narrows tasks by completion status and a case-insensitive
// substring match on the title. An empty query matches everything.
func Filter(tasks []Task, status Status, query string) []Task {
	query = strings.ToLower(query)
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		switch status {
		case StatusPending:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}
