package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	var id int64

	cmd := &cobra.Command{
		Use:     "complete <task-id>",
		Short:   "Toggle a task's completed flag",
		Aliases: []string{"toggle", "done"},
		Example: `
studyplan complete 1717171717171
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one task id")
			}
			var err error
			id, err = strconv.ParseInt(args[0], 10, 64)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := complete.Complete{ID: id, Service: svc}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
