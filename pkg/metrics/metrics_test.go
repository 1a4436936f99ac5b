package metrics

import (
	"testing"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
)

func deadline(t *testing.T, v string) planner.Timestamp {
	t.Helper()
	ts, err := planner.ParseDeadline(v)
	if err != nil {
		t.Fatalf("ParseDeadline(%q): %v", v, err)
	}
	return ts
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil, nil)
	if sum.CompletionPercent != 0 {
		t.Fatalf("zero tasks must yield 0%%, got %d", sum.CompletionPercent)
	}
	if sum.SubjectCount != 0 || sum.PendingCount != 0 || sum.CompletedCount != 0 {
		t.Fatalf("unexpected counts: %+v", sum)
	}
}

func TestSummarize(t *testing.T) {
	tasks := []planner.Task{
		{ID: 1, Completed: true},
		{ID: 2},
		{ID: 3, Completed: true},
	}
	sum := Summarize([]planner.Subject{{ID: 9}}, tasks)
	if sum.SubjectCount != 1 || sum.PendingCount != 1 || sum.CompletedCount != 2 {
		t.Fatalf("unexpected counts: %+v", sum)
	}
	// round(2/3 * 100) = 67
	if sum.CompletionPercent != 67 {
		t.Fatalf("completion = %d, want 67", sum.CompletionPercent)
	}
}

func TestUpcomingDeadlinesStableOrder(t *testing.T) {
	tasks := []planner.Task{
		{ID: 1, Title: "later", Deadline: deadline(t, "2025-03-05")},
		{ID: 2, Title: "first tie", Deadline: deadline(t, "2025-03-01")},
		{ID: 3, Title: "second tie", Deadline: deadline(t, "2025-03-01")},
		{ID: 4, Title: "done", Deadline: deadline(t, "2025-02-01"), Completed: true},
	}
	got := UpcomingDeadlines(tasks, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}
	// Completed tasks are excluded; the tied pair keeps its original order.
	if got[0].ID != 2 || got[1].ID != 3 || got[2].ID != 1 {
		t.Fatalf("wrong order: %d, %d, %d", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestUpcomingDeadlinesTruncates(t *testing.T) {
	tasks := []planner.Task{
		{ID: 1, Deadline: deadline(t, "2025-03-01")},
		{ID: 2, Deadline: deadline(t, "2025-03-02")},
	}
	if got := UpcomingDeadlines(tasks, 1); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	past := planner.Task{Deadline: deadline(t, "2025-03-01")}
	future := planner.Task{Deadline: deadline(t, "2025-03-20")}
	donePast := planner.Task{Deadline: deadline(t, "2025-03-01"), Completed: true}

	if !Overdue(past, now) {
		t.Fatal("incomplete past-deadline task must be overdue")
	}
	if Overdue(future, now) {
		t.Fatal("future task must not be overdue")
	}
	if Overdue(donePast, now) {
		t.Fatal("completed task is never overdue")
	}
	if got := OverdueCount([]planner.Task{past, future, donePast}, now); got != 1 {
		t.Fatalf("OverdueCount = %d, want 1", got)
	}
}

func TestSubjectBreakdown(t *testing.T) {
	subjects := []planner.Subject{
		{ID: 1, Name: "Math"},
		{ID: 2, Name: "Biology"},
		{ID: 3, Name: "History"},
	}
	tasks := []planner.Task{
		{SubjectID: 1, Completed: true},
		{SubjectID: 1},
		{SubjectID: 2, Completed: true},
	}
	stats, best := SubjectBreakdown(subjects, tasks)
	if len(stats) != 3 {
		t.Fatalf("expected 3 stats, got %d", len(stats))
	}
	if stats[0].CompletionPercent != 50 || stats[1].CompletionPercent != 100 {
		t.Fatalf("unexpected percents: %+v", stats)
	}
	// Subjects with no tasks report 0, not an error.
	if stats[2].CompletionPercent != 0 {
		t.Fatalf("task-less subject percent = %d, want 0", stats[2].CompletionPercent)
	}
	if best != "Biology" {
		t.Fatalf("best = %q, want Biology", best)
	}
}

func TestSubjectBreakdownBestTieAndEmpty(t *testing.T) {
	subjects := []planner.Subject{
		{ID: 1, Name: "Math"},
		{ID: 2, Name: "Biology"},
	}
	tasks := []planner.Task{
		{SubjectID: 1, Completed: true},
		{SubjectID: 2, Completed: true},
	}
	// Both at 100%; the first encountered wins the tie.
	if _, best := SubjectBreakdown(subjects, tasks); best != "Math" {
		t.Fatalf("best = %q, want Math", best)
	}

	if _, best := SubjectBreakdown(nil, nil); best != NoBestSubject {
		t.Fatalf("best with no subjects = %q, want %q", best, NoBestSubject)
	}

	// All zero percents never displace N/A.
	if _, best := SubjectBreakdown(subjects, []planner.Task{{SubjectID: 1}}); best != NoBestSubject {
		t.Fatalf("best with nothing completed = %q, want %q", best, NoBestSubject)
	}
}

func TestWeeklyHours(t *testing.T) {
	schedules := []planner.ScheduleSlot{
		{Day: planner.Monday, Start: "09:00", End: "10:30"},
		{Day: planner.Wednesday, Start: "14:00", End: "15:00"},
	}
	if got := WeeklyHours(schedules); got != 2.5 {
		t.Fatalf("WeeklyHours = %v, want 2.5", got)
	}
}

func TestWeeklyHoursClampsBackwardsSlots(t *testing.T) {
	schedules := []planner.ScheduleSlot{
		{Day: planner.Monday, Start: "10:00", End: "09:00"},
		{Day: planner.Monday, Start: "11:00", End: "12:00"},
		{Day: planner.Friday, Start: "bogus", End: "12:00"},
	}
	if got := WeeklyHours(schedules); got != 1 {
		t.Fatalf("WeeklyHours = %v, want 1", got)
	}
}

func TestDayMinutes(t *testing.T) {
	schedules := []planner.ScheduleSlot{
		{Day: planner.Monday, Start: "09:00", End: "10:30"},
		{Day: planner.Monday, Start: "11:00", End: "11:45"},
		{Day: planner.Tuesday, Start: "09:00", End: "17:00"},
	}
	if got := DayMinutes(schedules, planner.Monday); got != 135 {
		t.Fatalf("DayMinutes = %d, want 135", got)
	}
}

func TestProductivityScore(t *testing.T) {
	// round(80*0.6 + min(25, 30) - 5) = 68
	if got := ProductivityScore(80, 5, 1); got != 68 {
		t.Fatalf("score = %d, want 68", got)
	}
	// Hour bonus is capped at 30.
	if got := ProductivityScore(0, 40, 0); got != 30 {
		t.Fatalf("score = %d, want 30", got)
	}
	// Clamped at both ends.
	if got := ProductivityScore(0, 0, 10); got != 0 {
		t.Fatalf("score = %d, want 0", got)
	}
	if got := ProductivityScore(100, 10, 0); got != 90 {
		t.Fatalf("score = %d, want 90", got)
	}
	if got := ProductivityScore(100, 40, 0); got != 90 {
		t.Fatalf("score = %d, want 90", got)
	}
}
