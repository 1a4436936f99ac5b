// Package report provides the runner logic for the analytics panel.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyplan/pkg/app"
	"tableflip.dev/studyplan/pkg/metrics"
	"tableflip.dev/studyplan/pkg/printers"
)

// Report prints the analytics panel: completion, overdue count, per-subject
// breakdown, best subject, weekly hours, and the productivity score.
type Report struct {
	Service *app.Service

	// Now is injectable for tests; zero means time.Now.
	Now time.Time
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	st, err := n.Service.State(ctx)
	if err != nil {
		return err
	}

	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	sum := metrics.Summarize(st.Subjects, st.Tasks)
	overdue := metrics.OverdueCount(st.Tasks, now)
	stats, best := metrics.SubjectBreakdown(st.Subjects, st.Tasks)
	hours := metrics.WeeklyHours(st.Schedules)
	score := metrics.ProductivityScore(sum.CompletionPercent, hours, overdue)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Analytics")
	pp.NewLine()
	pp.Analytics(sum, overdue, stats, best, hours, score)
	return nil
}
