// Package planner holds the study-planner records and the in-memory
// collection state they live in.
package planner

import "errors"

var (
	// ErrValidation reports a missing or empty required field.
	ErrValidation = errors.New("planner: invalid input")

	// ErrConflict reports a schedule slot that overlaps an existing one.
	ErrConflict = errors.New("planner: schedule conflict")

	// ErrNotFound reports an operation against an id that does not exist.
	ErrNotFound = errors.New("planner: not found")
)

// Subject is a course or topic tasks and slots are filed under.
type Subject struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Priority Priority `json:"priority"`
}

// Task is a unit of work with a deadline. SubjectID may reference a subject
// that no longer exists; the reference is resolved only at display time.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Deadline  Timestamp `json:"deadline"`
	SubjectID int64     `json:"subjectId"`
	Completed bool      `json:"completed"`
}

// ScheduleSlot is a weekly time block on a single weekday. Start and End are
// "HH:MM" wall-clock strings; a slot with End not after Start is kept as-is
// and simply contributes nothing to hour totals.
type ScheduleSlot struct {
	ID        int64  `json:"id"`
	Day       Day    `json:"day"`
	Start     string `json:"start"`
	End       string `json:"end"`
	SubjectID int64  `json:"subjectId"`
}

// SubjectName resolves a subject id against the given subjects, returning
// "Deleted" for dangling references.
func SubjectName(subjects []Subject, id int64) string {
	for _, s := range subjects {
		if s.ID == id {
			return s.Name
		}
	}
	return "Deleted"
}
