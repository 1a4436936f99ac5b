// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyplan/pkg/app"
	"tableflip.dev/studyplan/pkg/printers"
)

// Complete toggles the completed flag on a task.
type Complete struct {
	ID int64

	Service *app.Service
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	task, err := n.Service.ToggleTask(ctx, n.ID)
	if err != nil {
		return err
	}

	if task.Completed {
		fmt.Printf("completed %q\n", task.Title)
	} else {
		fmt.Printf("reopened %q\n", task.Title)
	}

	st, err := n.Service.State(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.TitleWithCount("Tasks", len(st.Tasks))
	pp.Tasks(st.Subjects, st.Tasks, time.Now())
	return nil
}
