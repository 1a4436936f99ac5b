// Package backup provides the runner logic for exporting and importing the
// planner collections as one JSON artifact.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/studyplan/pkg/app"
)

// Export writes the backup artifact. Output of "-" means stdout.
type Export struct {
	Output string

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}

	if n.Output == "-" {
		return n.Service.Export(ctx, os.Stdout)
	}

	out := n.Output
	if out == "" {
		out = app.DefaultBackupName
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer func() { _ = f.Close() }()

	if err := n.Service.Export(ctx, f); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", out)
	return nil
}

// Import replaces the stored collections with a backup's contents.
type Import struct {
	Input string

	Service *app.Service
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}
	f, err := os.Open(n.Input)
	if err != nil {
		return fmt.Errorf("open %s: %w", n.Input, err)
	}
	defer func() { _ = f.Close() }()

	if err := n.Service.Import(ctx, f); err != nil {
		return err
	}
	fmt.Printf("imported %s\n", n.Input)
	return nil
}
