// Package stats drives playlists through the parser and accumulates
// per-playlist and whole-run file count, size and error statistics.
package stats

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lietu/plstats/internal/charset"
	"github.com/lietu/plstats/internal/playlist"
	"github.com/lietu/plstats/internal/shared"
)

// PlaylistStats holds the aggregates of one processed playlist.
type PlaylistStats struct {
	Source    string
	Files     int
	Size      int64
	Errors    int
	Elapsed   time.Duration
	Encodings map[string]int
}

// TotalStats is the running sum of all processed playlists plus its own
// elapsed timer. Failed counts sources that aborted before completion and
// contribute nothing to the sums.
type TotalStats struct {
	Sources int
	Failed  int
	Files   int
	Size    int64
	Errors  int
	Elapsed time.Duration
}

func (t *TotalStats) add(p PlaylistStats) {
	t.Sources++
	t.Files += p.Files
	t.Size += p.Size
	t.Errors += p.Errors
}

// Aggregator processes playlist sources sequentially, one generator per
// source, and reports progress through its logger.
type Aggregator struct {
	logger   *log.Logger
	charsets []charset.Charset
	windows  bool
}

// AggregatorOpts contains configuration options for creating an Aggregator.
type AggregatorOpts struct {
	Logger   *log.Logger
	Charsets []charset.Charset

	// Windows selects Windows path rules for entry resolution; pass
	// runtime.GOOS == "windows" outside of tests.
	Windows bool
}

// NewAggregator creates an Aggregator with the provided options, defaulting
// the logger to stderr and the charsets to the built-in trial order.
func NewAggregator(opts AggregatorOpts) *Aggregator {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if len(opts.Charsets) == 0 {
		opts.Charsets = charset.Default()
	}

	return &Aggregator{
		logger:   opts.Logger,
		charsets: opts.Charsets,
		windows:  opts.Windows,
	}
}

// Run processes each source to completion in order. A source that fails
// (unsupported format, unreadable file, mid-stream read failure, stat
// failure on a resolved entry) is
// logged and skipped without stopping later sources. Totals are logged once
// at the end when at least one source was attempted.
func (a *Aggregator) Run(sources []string) (TotalStats, []PlaylistStats) {
	logger := shared.WithLogger(a.logger, "run", shared.GenerateID())

	var total TotalStats
	var processed []PlaylistStats
	start := time.Now()

	for _, source := range sources {
		ps, err := a.process(logger, source)
		if err != nil {
			total.Failed++
			logger.Error("failed to process playlist", "source", source, "err", err)
			continue
		}
		processed = append(processed, ps)
		total.add(ps)
	}

	total.Elapsed = time.Since(start)

	if len(sources) > 0 {
		logger.Info("run complete",
			"elapsed", fmt.Sprintf("%.2fs", total.Elapsed.Seconds()),
			"files", total.Files,
			"size", shared.FormatSize(total.Size),
			"errors", total.Errors)
	}

	return total, processed
}

// process exhausts one playlist's generator, summing file sizes per resolved
// path. A stat failure on an already-resolved path is unexpected and aborts
// this playlist.
func (a *Aggregator) process(logger *log.Logger, source string) (PlaylistStats, error) {
	logger.Info("processing playlist", "source", source)
	start := time.Now()

	g, err := playlist.Open(source, playlist.Options{
		Logger:   logger,
		Charsets: a.charsets,
		Windows:  a.windows,
	})
	if err != nil {
		return PlaylistStats{}, err
	}
	defer g.Close()

	ps := PlaylistStats{Source: source}
	for {
		path, ok := g.Next()
		if !ok {
			break
		}

		info, err := os.Stat(path)
		if err != nil {
			return PlaylistStats{}, fmt.Errorf("failed to stat resolved entry: %w", err)
		}
		ps.Files++
		ps.Size += info.Size()
	}

	if err := g.Err(); err != nil {
		return PlaylistStats{}, fmt.Errorf("failed to read playlist: %w", err)
	}

	ps.Errors = g.Errors()
	ps.Encodings = g.Stats()
	ps.Elapsed = time.Since(start)

	logger.Info("playlist processed",
		"source", source,
		"elapsed", fmt.Sprintf("%.2fs", ps.Elapsed.Seconds()),
		"files", ps.Files,
		"size", shared.FormatSize(ps.Size),
		"errors", ps.Errors)

	return ps, nil
}
