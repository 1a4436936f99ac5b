package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all stored data",
		Example: `
studyplan reset --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !co.Yes {
				return errors.New("refusing to reset without --yes")
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := reset.Reset{Service: svc}
			return s.Do(context.Background())
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
