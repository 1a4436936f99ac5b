// Package remove provides the runner logic for deleting records.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/studyplan/pkg/app"
)

// Kind names the collection a Remove operates on.
type Kind string

const (
	Subject Kind = "subject"
	Task    Kind = "task"
	Slot    Kind = "slot"
)

// Remove deletes a record by id. Unknown ids are a quiet no-op, matching
// the collection semantics. Removing a subject cascades to its tasks;
// schedule slots keep a dangling reference and render as Deleted.
type Remove struct {
	Kind Kind
	ID   int64

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	switch n.Kind {
	case Subject:
		if err := n.Service.RemoveSubject(ctx, n.ID); err != nil {
			return err
		}
		fmt.Println("subject removed, tasks cascaded")
	case Task:
		if err := n.Service.RemoveTask(ctx, n.ID); err != nil {
			return err
		}
		fmt.Println("task removed")
	case Slot:
		if err := n.Service.RemoveSlot(ctx, n.ID); err != nil {
			return err
		}
		fmt.Println("schedule slot removed")
	default:
		return fmt.Errorf("unknown kind %q", n.Kind)
	}
	return nil
}
