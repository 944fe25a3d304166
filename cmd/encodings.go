package main

import (
	"context"
	"fmt"

	"github.com/lietu/plstats/internal/charset"
	"github.com/urfave/cli/v3"
)

// Encodings prints the effective encoding trial order, honoring a
// configured priority override so the operator can verify it.
func (r *Runner) Encodings(ctx context.Context, cmd *cli.Command) error {
	charsets, err := charset.Priority(r.config.Encodings.Priority)
	if err != nil {
		return fmt.Errorf("invalid encoding priority: %w", err)
	}

	for i, cs := range charsets {
		if err := r.writePlain("%3d. %s\n", i+1, cs.Name); err != nil {
			return err
		}
	}
	return nil
}

// encodingsCommand lists the encodings tried when resolving entries
func encodingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "encodings",
		Usage:  "List the encoding trial order used for entry resolution",
		Action: r.Encodings,
	}
}
