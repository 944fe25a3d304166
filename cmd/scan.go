package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/lietu/plstats/internal/charset"
	"github.com/lietu/plstats/internal/shared"
	"github.com/lietu/plstats/internal/stats"
	"github.com/urfave/cli/v3"
)

// Scan processes the playlists given as positional arguments, logging
// progress and printing a per-playlist and totals summary.
//
// Failed sources are skipped so the remaining playlists still get stats. The
// command only fails when every requested source failed.
func (r *Runner) Scan(ctx context.Context, cmd *cli.Command) error {
	sources := cmd.Args().Slice()
	if len(sources) == 0 {
		return fmt.Errorf("%w: at least one playlist path", shared.ErrMissingArgument)
	}

	charsets, err := charset.Priority(r.config.Encodings.Priority)
	if err != nil {
		return fmt.Errorf("invalid encoding priority: %w", err)
	}

	aggregator := stats.NewAggregator(stats.AggregatorOpts{
		Logger:   r.logger,
		Charsets: charsets,
		Windows:  runtime.GOOS == "windows",
	})

	total, processed := aggregator.Run(sources)

	reporter := stats.NewReporter(r.output, r.config.Report.Color)
	for _, ps := range processed {
		reporter.Playlist(ps)
	}
	reporter.Totals(total)

	if total.Failed == len(sources) {
		return fmt.Errorf("all %d playlists failed", total.Failed)
	}
	return nil
}

// scanCommand calculates stats from playlist files
func scanCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Process playlists and report file count, size and errors",
		ArgsUsage: "PATH [PATH ...]",
		Action:    r.Scan,
	}
}
