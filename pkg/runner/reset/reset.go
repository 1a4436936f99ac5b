// Package reset provides the runner logic for clearing all stored data.
package reset

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/studyplan/pkg/app"
)

// Reset erases every stored collection and the display preference. The
// command layer requires an explicit confirmation flag before running it.
type Reset struct {
	Service *app.Service
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reset, no service")
	}
	if err := n.Service.Reset(ctx); err != nil {
		return err
	}
	fmt.Println("all data reset")
	return nil
}
