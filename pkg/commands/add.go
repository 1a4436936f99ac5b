package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a subject, task, or schedule slot",
		Example: `
studyplan add subject Math --priority high
studyplan add task "Read chapter 4" --due 2025-03-01 --subject 1717171717171
studyplan add slot --day Monday --start 09:00 --end 10:30 --subject 1717171717171
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSubject(cmd)
	addTask(cmd)
	addSlot(cmd)

	topLevel.AddCommand(cmd)
}

func addSubject(topLevel *cobra.Command) {
	so := &options.SubjectOptions{}

	cmd := &cobra.Command{
		Use:   "subject <name>",
		Short: "Add a subject",
		Example: `
studyplan add subject Biology
studyplan add subject "Linear Algebra" --priority high
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a subject name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			priority, err := planner.ParsePriority(so.Priority)
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Subject{
				Name:     strings.Join(args, " "),
				Priority: priority,
				Service:  svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddSubjectArgs(cmd, so)
	topLevel.AddCommand(cmd)
}

func addTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "task <title>",
		Short: "Add a task with a deadline",
		Example: `
studyplan add task "Physics quiz prep" --due 2025-03-01
studyplan add task "Lab report" --due 2025-03-05T17:00 --subject 1717171717171
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			deadline, err := planner.ParseDeadline(to.Due)
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Task{
				Title:     strings.Join(args, " "),
				Deadline:  deadline,
				SubjectID: to.SubjectID,
				Service:   svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTaskArgs(cmd, to)
	_ = cmd.MarkFlagRequired("due")
	topLevel.AddCommand(cmd)
}

func addSlot(topLevel *cobra.Command) {
	so := &options.SlotOptions{}

	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Add a weekly schedule slot",
		Long: options.Wrap80("Add a time block to the weekly schedule. " +
			"A block that overlaps an existing one on the same day is rejected; " +
			"blocks that merely touch endpoints are fine."),
		Example: `
studyplan add slot --day Monday --start 09:00 --end 10:30
studyplan add slot --day fri --start 14:00 --end 15:00 --subject 1717171717171
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := planner.ParseDay(so.Day)
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Slot{
				Day:       day,
				Start:     so.Start,
				End:       so.End,
				SubjectID: so.SubjectID,
				Service:   svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddSlotArgs(cmd, so)
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	topLevel.AddCommand(cmd)
}
