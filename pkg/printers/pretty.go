// Package printers renders planner collections and derived metrics for the
// terminal. Nothing here mutates state; it consumes what the core hands it.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyplan/pkg/metrics"
	"tableflip.dev/studyplan/pkg/planner"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1717171717171  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// Subjects prints the subject list with priorities.
func (pp *PrettyPrint) Subjects(subjects []planner.Subject) {
	if len(subjects) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range subjects {
		if pp.ShowID {
			tbl.AddRow(s.ID, s.Name, fmt.Sprintf("(%s)", s.Priority))
		} else {
			tbl.AddRow(s.Name, fmt.Sprintf("(%s)", s.Priority))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Tasks prints tasks with their subject, deadline, and status. Completed
// titles are struck through; overdue rows are flagged in red.
func (pp *PrettyPrint) Tasks(subjects []planner.Subject, tasks []planner.Task, now time.Time) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	red := color.New(color.FgHiRed)
	tbl := uitable.New()
	tbl.Separator = "  "

	for _, t := range tasks {
		title := t.Title
		mark := "•"
		due := t.Deadline.String()
		if t.Completed {
			title = Strike(title)
			mark = "✔"
		}
		if metrics.Overdue(t, now) {
			due = red.Sprintf("%s (overdue)", due)
		}
		if pp.ShowID {
			tbl.AddRow(t.ID, mark, title, planner.SubjectName(subjects, t.SubjectID), due)
		} else {
			tbl.AddRow(mark, title, planner.SubjectName(subjects, t.SubjectID), due)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Schedule prints the weekly view, one group per day with the day's total
// hours under it. Days without slots are skipped.
func (pp *PrettyPrint) Schedule(subjects []planner.Subject, schedules []planner.ScheduleSlot) {
	printed := false
	for _, day := range planner.Weekdays() {
		var daySlots []planner.ScheduleSlot
		for _, s := range schedules {
			if s.Day == day {
				daySlots = append(daySlots, s)
			}
		}
		if len(daySlots) == 0 {
			continue
		}
		printed = true

		pp.Title(string(day))
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, s := range daySlots {
			if pp.ShowID {
				tbl.AddRow(s.ID, fmt.Sprintf("%s - %s", s.Start, s.End), planner.SubjectName(subjects, s.SubjectID))
			} else {
				tbl.AddRow(fmt.Sprintf("%s - %s", s.Start, s.End), planner.SubjectName(subjects, s.SubjectID))
			}
		}
		_, _ = fmt.Fprintln(color.Output, tbl)

		hours := float64(metrics.DayMinutes(schedules, day)) / 60
		f := color.New(color.Faint)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Printf("Total: %.2f hrs\n\n", hours)
	}
	if !printed {
		pp.none()
	}
}

// Dashboard prints the headline summary and the next deadlines.
func (pp *PrettyPrint) Dashboard(sum metrics.Summary, upcoming []planner.Task, subjects []planner.Subject) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(Bold("Subjects"), sum.SubjectCount)
	tbl.AddRow(Bold("Pending tasks"), sum.PendingCount)
	tbl.AddRow(Bold("Completed tasks"), sum.CompletedCount)
	tbl.AddRow(Bold("Completion"), fmt.Sprintf("%d%%", sum.CompletionPercent))
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")

	pp.Title("Upcoming deadlines")
	if len(upcoming) == 0 {
		pp.none()
		return
	}
	due := uitable.New()
	due.Separator = "  "
	for _, t := range upcoming {
		due.AddRow(t.Title, planner.SubjectName(subjects, t.SubjectID), "due "+t.Deadline.String())
	}
	_, _ = fmt.Fprintln(color.Output, due)
	fmt.Println("")
}

// Analytics prints the full analytics panel.
func (pp *PrettyPrint) Analytics(sum metrics.Summary, overdue int, stats []metrics.SubjectStat, best string, weeklyHours float64, score int) {
	completed := sum.CompletedCount
	total := sum.CompletedCount + sum.PendingCount
	fmt.Printf("%d out of %d tasks completed\n", completed, total)

	red := color.New(color.FgHiRed)
	if overdue > 0 {
		_, _ = red.Printf("%d overdue tasks\n", overdue)
	} else {
		fmt.Println("0 overdue tasks")
	}
	fmt.Println("")

	if len(stats) > 0 {
		pp.Title("Subjects")
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, st := range stats {
			tbl.AddRow(st.Subject.Name, progressBar(st.CompletionPercent), fmt.Sprintf("%d%%", st.CompletionPercent))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		fmt.Println("")
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(Bold("Best subject"), best)
	tbl.AddRow(Bold("Weekly hours"), fmt.Sprintf("%.2f hours planned this week", weeklyHours))
	tbl.AddRow(Bold("Productivity"), fmt.Sprintf("%d / 100", score))
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// progressBar renders percent as a 20-cell bar.
func progressBar(percent int) string {
	const width = 20
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
