package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove",
		Short:   "Remove a subject, task, or schedule slot",
		Aliases: []string{"rm", "delete"},
		Example: `
studyplan remove subject 1717171717171
studyplan remove task 1717171717172
studyplan remove slot 1717171717173
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemoveKind(cmd, remove.Subject, "Remove a subject and cascade its tasks")
	addRemoveKind(cmd, remove.Task, "Remove a task")
	addRemoveKind(cmd, remove.Slot, "Remove a schedule slot")

	topLevel.AddCommand(cmd)
}

func addRemoveKind(topLevel *cobra.Command, kind remove.Kind, short string) {
	var id int64

	cmd := &cobra.Command{
		Use:   string(kind) + " <id>",
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one id")
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
			s := remove.Remove{Kind: kind, ID: id, Service: svc}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
