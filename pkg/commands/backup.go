package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/runner/backup"
)

func addExport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all collections as one JSON file",
		Example: `
studyplan export
studyplan export -o backup.json
studyplan export -o -
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := backup.Export{Output: oo.Output, Service: svc}
			return s.Do(context.Background())
		},
	}

	options.AddOutputArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all collections with an exported backup",
		Example: `
studyplan import study_planner_backup.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a backup file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := backup.Import{Input: args[0], Service: svc}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
