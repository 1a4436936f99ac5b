// Package metrics derives dashboard and analytics figures from the planner
// collections. Every function here is pure: slices in, numbers out, nothing
// mutated and nothing stored.
package metrics

import (
	"math"
	"sort"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/timeslot"
)

// Summary is the dashboard headline: counts plus overall completion.
type Summary struct {
	SubjectCount      int
	PendingCount      int
	CompletedCount    int
	CompletionPercent int
}

// SubjectStat is the per-subject completion breakdown.
type SubjectStat struct {
	Subject           planner.Subject
	CompletionPercent int
}

// NoBestSubject is reported when no subject has any completed work.
const NoBestSubject = "N/A"

// Summarize computes the dashboard summary. Completion is 0 when there are
// no tasks at all.
func Summarize(subjects []planner.Subject, tasks []planner.Task) Summary {
	sum := Summary{SubjectCount: len(subjects)}
	for _, t := range tasks {
		if t.Completed {
			sum.CompletedCount++
		} else {
			sum.PendingCount++
		}
	}
	sum.CompletionPercent = percent(sum.CompletedCount, len(tasks))
	return sum
}

// UpcomingDeadlines returns the n incomplete tasks due soonest, soonest
// first. The sort is stable: tasks sharing a deadline keep their original
// relative order.
func UpcomingDeadlines(tasks []planner.Task, n int) []planner.Task {
	pending := make([]planner.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Deadline.Before(pending[j].Deadline.Time)
	})
	if n >= 0 && len(pending) > n {
		pending = pending[:n]
	}
	return pending
}

// Overdue reports whether the task's deadline has passed and it is still
// incomplete.
func Overdue(t planner.Task, now time.Time) bool {
	return t.Deadline.Before(now) && !t.Completed
}

// OverdueCount counts overdue tasks as of now.
func OverdueCount(tasks []planner.Task, now time.Time) int {
	count := 0
	for _, t := range tasks {
		if Overdue(t, now) {
			count++
		}
	}
	return count
}

// SubjectBreakdown computes per-subject completion in subject order, plus
// the best subject name. Best is the first subject whose percent strictly
// beats the running maximum, which starts at zero: with no subjects, or
// with nothing completed anywhere, best is N/A.
func SubjectBreakdown(subjects []planner.Subject, tasks []planner.Task) ([]SubjectStat, string) {
	stats := make([]SubjectStat, 0, len(subjects))
	best := NoBestSubject
	bestPercent := 0
	for _, sub := range subjects {
		total, completed := 0, 0
		for _, t := range tasks {
			if t.SubjectID != sub.ID {
				continue
			}
			total++
			if t.Completed {
				completed++
			}
		}
		p := percent(completed, total)
		if p > bestPercent {
			bestPercent = p
			best = sub.Name
		}
		stats = append(stats, SubjectStat{Subject: sub, CompletionPercent: p})
	}
	return stats, best
}

// WeeklyHours sums planned hours across all slots, rounded to two decimal
// places. Slots whose duration is not positive, or whose times do not
// parse, contribute nothing.
func WeeklyHours(schedules []planner.ScheduleSlot) float64 {
	minutes := 0
	for _, slot := range schedules {
		d, ok := slotMinutes(slot)
		if ok && d > 0 {
			minutes += d
		}
	}
	return math.Round(float64(minutes)/60*100) / 100
}

// DayMinutes sums the raw minutes scheduled on one day, negatives included,
// mirroring what the weekly view prints per day.
func DayMinutes(schedules []planner.ScheduleSlot, day planner.Day) int {
	minutes := 0
	for _, slot := range schedules {
		if slot.Day != day {
			continue
		}
		if d, ok := slotMinutes(slot); ok {
			minutes += d
		}
	}
	return minutes
}

// ProductivityScore folds completion, planned hours, and the overdue
// penalty into one number on [0, 100]:
//
//	completionPercent*0.6 + min(weeklyHours*5, 30) - overdueCount*5
//
// The coefficients are fixed policy; changing them changes every historical
// score a user has seen.
func ProductivityScore(completionPercent int, weeklyHours float64, overdueCount int) int {
	score := float64(completionPercent) * 0.6
	score += math.Min(weeklyHours*5, 30)
	score -= float64(overdueCount) * 5
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func slotMinutes(slot planner.ScheduleSlot) (int, bool) {
	s, err := timeslot.ParseClock(slot.Start)
	if err != nil {
		return 0, false
	}
	e, err := timeslot.ParseClock(slot.End)
	if err != nil {
		return 0, false
	}
	return timeslot.Duration(s, e), true
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
