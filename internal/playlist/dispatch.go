package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lietu/plstats/internal/charset"
	"github.com/lietu/plstats/internal/shared"
)

// Options configures how a playlist is opened and resolved.
type Options struct {
	// Logger receives per-entry resolution failures. Defaults to a stderr logger.
	Logger *log.Logger

	// Charsets is the encoding trial order. Defaults to [charset.Default].
	Charsets []charset.Charset

	// Windows selects Windows path rules; pass runtime.GOOS == "windows"
	// outside of tests.
	Windows bool
}

// Open selects the playlist format from the source's file extension and
// returns a generator over its resolved entries. Dispatch happens before any
// file I/O: an unrecognized extension fails with
// [shared.ErrUnsupportedFormat] without opening the source.
func Open(source string, opts Options) (*Generator, error) {
	var parser lineParser
	switch strings.ToLower(filepath.Ext(source)) {
	case ".m3u", ".m3u8":
		parser = m3uParser{}
	case ".pls":
		parser = plsParser{}
	default:
		return nil, fmt.Errorf("%w: %s", shared.ErrUnsupportedFormat, source)
	}

	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}

	resolver := NewResolver(filepath.Dir(source), opts.Windows, opts.Charsets)
	return newGenerator(source, file, parser, resolver, opts.Logger), nil
}
