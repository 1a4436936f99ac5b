// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// SubjectOptions captures flags for subject creation.
type SubjectOptions struct {
	Priority string
}

func AddSubjectArgs(cmd *cobra.Command, o *SubjectOptions) {
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "medium",
		"Subject priority, one of low, medium, or high.")
}

// TaskOptions captures flags for task creation.
type TaskOptions struct {
	Due       string
	SubjectID int64
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Due, "due", "",
		`Deadline for the task, example: --due="2025-03-01" or --due="2025-03-01T17:30".`)
	cmd.Flags().Int64VarP(&o.SubjectID, "subject", "s", 0,
		"Subject id the task belongs to.")
}

// SlotOptions captures flags for schedule slot creation.
type SlotOptions struct {
	Day       string
	Start     string
	End       string
	SubjectID int64
}

func AddSlotArgs(cmd *cobra.Command, o *SlotOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		"Weekday for the block, Monday through Friday.")
	cmd.Flags().StringVar(&o.Start, "start", "",
		`Start time, example: --start="09:00".`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`End time, example: --end="10:30".`)
	cmd.Flags().Int64VarP(&o.SubjectID, "subject", "s", 0,
		"Subject id the block belongs to.")
}

// FilterOptions captures the task list narrowing flags.
type FilterOptions struct {
	Status string
	Search string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.Status, "status", "all",
		"Filter tasks by status, one of all, pending, or completed.")
	cmd.Flags().StringVar(&o.Search, "search", "",
		"Case-insensitive substring match on task titles.")
}

// IDOptions captures id display flags.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show record ids.")
}

// ConfirmOptions captures the explicit confirmation flag for destructive
// commands.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Confirm the operation without prompting.")
}

// OutputOptions captures where a command writes its artifact.
type OutputOptions struct {
	Output string
}

func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		`Output file, or "-" for stdout.`)
}
