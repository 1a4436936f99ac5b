// Package get provides the runner logic for the read-only views.
package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyplan/pkg/app"
	"tableflip.dev/studyplan/pkg/metrics"
	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
)

// View selects what a Get prints.
type View string

const (
	Subjects  View = "subjects"
	Tasks     View = "tasks"
	Schedule  View = "schedule"
	Dashboard View = "dashboard"
)

// UpcomingCount is how many deadlines the dashboard shows.
const UpcomingCount = 3

// Get prints one of the planner views.
type Get struct {
	View   View
	ShowID bool

	// Task list narrowing, used by the tasks view only.
	Status planner.Status
	Search string

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	st, err := n.Service.State(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	switch n.View {
	case Subjects:
		pp.TitleWithCount("Subjects", len(st.Subjects))
		pp.Subjects(st.Subjects)
	case Tasks:
		status := n.Status
		if status == "" {
			status = planner.StatusAll
		}
		tasks := planner.Filter(st.Tasks, status, n.Search)
		pp.TitleWithCount("Tasks", len(tasks))
		pp.Tasks(st.Subjects, tasks, time.Now())
	case Schedule:
		pp.Title("Weekly schedule")
		pp.NewLine()
		pp.Schedule(st.Subjects, st.Schedules)
	case Dashboard:
		pp.Title("Dashboard")
		pp.NewLine()
		sum := metrics.Summarize(st.Subjects, st.Tasks)
		upcoming := metrics.UpcomingDeadlines(st.Tasks, UpcomingCount)
		pp.Dashboard(sum, upcoming, st.Subjects)
	default:
		return fmt.Errorf("unknown view %q", n.View)
	}
	return nil
}
