// Package commands wires the studyplan CLI.
package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/app"
	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "studyplan",
		Short: options.Wrap80("Track subjects, tasks, and a weekly study schedule from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addRemove(topLevel)
	addReport(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addReset(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// loadService builds the app service over the configured store.
func loadService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p}, nil
}
