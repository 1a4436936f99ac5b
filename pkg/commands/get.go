package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print a planner view",
		Example: `
studyplan get dashboard
studyplan get tasks --status pending --search quiz
studyplan get schedule
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGetSubjects(cmd)
	addGetTasks(cmd)
	addGetSchedule(cmd)
	addGetDashboard(cmd)

	topLevel.AddCommand(cmd)
}

func addGetSubjects(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "subjects",
		Short:   "List subjects",
		Aliases: []string{"subject"},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := get.Get{View: get.Subjects, ShowID: io.ShowID, Service: svc}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addGetTasks(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "tasks",
		Short:   "List tasks, optionally filtered",
		Aliases: []string{"task"},
		Example: `
studyplan get tasks
studyplan get tasks --status pending
studyplan get tasks --search "chapter"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := planner.ParseStatus(fo.Status)
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := get.Get{
				View:    get.Tasks,
				ShowID:  io.ShowID,
				Status:  status,
				Search:  fo.Search,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddFilterArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}

func addGetSchedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "schedule",
		Short:   "Print the weekly schedule",
		Aliases: []string{"slots", "week"},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := get.Get{View: get.Schedule, ShowID: io.ShowID, Service: svc}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addGetDashboard(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := get.Get{View: get.Dashboard, Service: svc}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
