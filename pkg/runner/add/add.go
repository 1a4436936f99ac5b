// Package add provides the runner logic for creating subjects, tasks, and
// schedule slots.
package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyplan/pkg/app"
	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
)

// Subject adds a subject and reprints the subject list.
type Subject struct {
	Name     string
	Priority planner.Priority

	Service *app.Service
}

func (n *Subject) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if _, err := n.Service.AddSubject(ctx, n.Name, n.Priority); err != nil {
		return err
	}

	st, err := n.Service.State(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Subjects", len(st.Subjects))
	pp.Subjects(st.Subjects)
	return nil
}

// Task adds a task and reprints the task list.
type Task struct {
	Title     string
	Deadline  planner.Timestamp
	SubjectID int64

	Service *app.Service
}

func (n *Task) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if _, err := n.Service.AddTask(ctx, n.Title, n.Deadline, n.SubjectID); err != nil {
		return err
	}

	st, err := n.Service.State(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Tasks", len(st.Tasks))
	pp.Tasks(st.Subjects, st.Tasks, time.Now())
	return nil
}

// Slot adds a weekly schedule block and reprints that day's schedule. A
// conflicting block is reported as an ordinary error, not stored.
type Slot struct {
	Day       planner.Day
	Start     string
	End       string
	SubjectID int64

	Service *app.Service
}

func (n *Slot) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if _, err := n.Service.AddSlot(ctx, n.Day, n.Start, n.End, n.SubjectID); err != nil {
		return err
	}

	st, err := n.Service.State(ctx)
	if err != nil {
		return err
	}
	daySlots := make([]planner.ScheduleSlot, 0, len(st.Schedules))
	for _, s := range st.Schedules {
		if s.Day == n.Day {
			daySlots = append(daySlots, s)
		}
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Schedule(st.Subjects, daySlots)
	return nil
}
