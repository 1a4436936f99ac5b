package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Print the analytics panel",
		Aliases: []string{"analytics"},
		Example: `
studyplan report
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := report.Report{Service: svc}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
