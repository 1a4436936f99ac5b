package planner

import (
	"errors"
	"testing"

	"tableflip.dev/studyplan/pkg/timeslot"
)

func mustDeadline(t *testing.T, v string) Timestamp {
	t.Helper()
	ts, err := ParseDeadline(v)
	if err != nil {
		t.Fatalf("ParseDeadline(%q): %v", v, err)
	}
	return ts
}

func TestAddSubjectValidation(t *testing.T) {
	st := NewState()
	if _, err := st.AddSubject("   ", Medium); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	s, err := st.AddSubject("  Math ", High)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Math" {
		t.Fatalf("name not trimmed: %q", s.Name)
	}
	if s.ID == 0 {
		t.Fatal("expected a non-zero id")
	}
}

func TestIDsUniqueWithinSession(t *testing.T) {
	st := NewState()
	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		s, err := st.AddSubject("Subject", Low)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate id %d", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestDeleteSubjectCascade(t *testing.T) {
	st := NewState()
	math, _ := st.AddSubject("Math", High)
	bio, _ := st.AddSubject("Biology", Low)

	if _, err := st.AddTask("Derivatives", mustDeadline(t, "2025-03-01"), math.ID); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := st.AddTask("Cells", mustDeadline(t, "2025-03-02"), bio.ID); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := st.AddSchedule(Monday, "09:00", "10:00", math.ID); err != nil {
		t.Fatalf("add schedule: %v", err)
	}

	st.DeleteSubject(math.ID)

	if len(st.Subjects) != 1 || st.Subjects[0].ID != bio.ID {
		t.Fatalf("expected only biology to remain, got %+v", st.Subjects)
	}
	for _, task := range st.Tasks {
		if task.SubjectID == math.ID {
			t.Fatalf("cascade missed task %+v", task)
		}
	}
	if len(st.Schedules) != 1 {
		t.Fatalf("schedule slots must survive subject deletion, got %d", len(st.Schedules))
	}
	if got := SubjectName(st.Subjects, st.Schedules[0].SubjectID); got != "Deleted" {
		t.Fatalf("dangling slot should render as Deleted, got %q", got)
	}
}

func TestDeleteUnknownIsNoop(t *testing.T) {
	st := NewState()
	s, _ := st.AddSubject("Math", High)
	st.DeleteSubject(12345)
	st.DeleteTask(12345)
	st.DeleteSchedule(12345)
	if len(st.Subjects) != 1 || st.Subjects[0].ID != s.ID {
		t.Fatalf("no-op delete mutated state: %+v", st.Subjects)
	}
}

func TestAddTaskValidation(t *testing.T) {
	st := NewState()
	if _, err := st.AddTask("", mustDeadline(t, "2025-03-01"), 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty title, got %v", err)
	}
	if _, err := st.AddTask("Read", Timestamp{}, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for zero deadline, got %v", err)
	}
	// A subject id that resolves to nothing is stored as given.
	task, err := st.AddTask("Read", mustDeadline(t, "2025-03-01"), 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.SubjectID != 999 {
		t.Fatalf("subject id rewritten: %d", task.SubjectID)
	}
	if task.Completed {
		t.Fatal("new task must start incomplete")
	}
}

func TestToggleTask(t *testing.T) {
	st := NewState()
	task, _ := st.AddTask("Read", mustDeadline(t, "2025-03-01"), 0)

	got, err := st.ToggleTask(task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Completed {
		t.Fatal("expected task completed after toggle")
	}
	got, err = st.ToggleTask(task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Completed {
		t.Fatal("expected task pending after second toggle")
	}

	if _, err := st.ToggleTask(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestAddScheduleConflicts(t *testing.T) {
	st := NewState()
	if _, err := st.AddSchedule(Monday, "09:00", "10:00", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Overlapping block on the same day is rejected without mutation.
	if _, err := st.AddSchedule(Monday, "09:30", "10:30", 0); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(st.Schedules) != 1 {
		t.Fatalf("rejected insert mutated state: %d slots", len(st.Schedules))
	}

	// Adjacent block sharing an endpoint is accepted.
	if _, err := st.AddSchedule(Monday, "10:00", "11:00", 0); err != nil {
		t.Fatalf("adjacent slot rejected: %v", err)
	}

	// Same times on another day never conflict.
	if _, err := st.AddSchedule(Tuesday, "09:00", "10:00", 0); err != nil {
		t.Fatalf("other-day slot rejected: %v", err)
	}
}

func TestAddScheduleMalformedTime(t *testing.T) {
	st := NewState()
	if _, err := st.AddSchedule(Monday, "9am", "10:00", 0); !errors.Is(err, timeslot.ErrMalformedTime) {
		t.Fatalf("expected ErrMalformedTime, got %v", err)
	}
	if len(st.Schedules) != 0 {
		t.Fatal("malformed insert mutated state")
	}
}

func TestZeroLengthSlotAlwaysAccepted(t *testing.T) {
	st := NewState()
	if _, err := st.AddSchedule(Monday, "09:00", "10:00", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := st.AddSchedule(Monday, "09:30", "09:30", 0); err != nil {
		t.Fatalf("zero-length slot must pass the half-open check, got %v", err)
	}
}

func TestBackwardsSlotTolerated(t *testing.T) {
	st := NewState()
	slot, err := st.AddSchedule(Monday, "10:00", "09:00", 0)
	if err != nil {
		t.Fatalf("backwards slot must be stored as-is, got %v", err)
	}
	if slot.Start != "10:00" || slot.End != "09:00" {
		t.Fatalf("slot rewritten: %+v", slot)
	}
}
