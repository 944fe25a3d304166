package playlist

import (
	"bufio"
	"bytes"
	"os"

	"github.com/charmbracelet/log"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// lineParser extracts the raw entry from one cleaned playlist line, or
// signals that the line carries no entry and should be skipped.
type lineParser interface {
	parse(line []byte) ([]byte, bool)
}

// m3uParser handles M3U and M3U8 playlists: `#` lines are comments or
// extended directives, every other line is an entry.
type m3uParser struct{}

func (m3uParser) parse(line []byte) ([]byte, bool) {
	if bytes.HasPrefix(line, []byte("#")) {
		return nil, false
	}
	return line, true
}

// plsParser handles PLS playlists: only lines shaped like File<N>=<path>
// carry entries, everything else ([playlist], Title<N>=, Length<N>=,
// NumberOfEntries=, Version=) is metadata.
type plsParser struct{}

func (plsParser) parse(line []byte) ([]byte, bool) {
	if !bytes.HasPrefix(line, []byte("File")) {
		return nil, false
	}
	pos := bytes.IndexByte(line, '=')
	if pos < 0 {
		return nil, false
	}
	return line[pos+1:], true
}

// Generator produces the resolved paths of one playlist as a lazy,
// forward-only, single-pass sequence. It owns the underlying file from
// construction until Close or exhaustion, and keeps per-playlist error and
// encoding counters for the aggregator to read afterwards.
type Generator struct {
	source    string
	file      *os.File
	scanner   *bufio.Scanner
	parser    lineParser
	resolver  *Resolver
	logger    *log.Logger
	firstLine bool
	errors    int
	done      bool
	readErr   error
}

func newGenerator(source string, file *os.File, parser lineParser, resolver *Resolver, logger *log.Logger) *Generator {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	return &Generator{
		source:    source,
		file:      file,
		scanner:   scanner,
		parser:    parser,
		resolver:  resolver,
		logger:    logger,
		firstLine: true,
	}
}

// Next returns the next resolved path in the playlist. Entries that fail
// resolution are logged and counted, and iteration continues with the next
// line. Returns false once the playlist is exhausted; further calls keep
// returning false. Check Err after Next returns false to distinguish stream
// end from a read failure.
func (g *Generator) Next() (string, bool) {
	for !g.done && g.scanner.Scan() {
		line := g.cleanLine(g.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		raw, ok := g.parser.parse(line)
		if !ok {
			continue
		}

		path, err := g.resolver.Resolve(raw)
		if err != nil {
			g.errors++
			g.logger.Error("failed to resolve playlist entry", "source", g.source, "entry", string(raw))
			continue
		}

		return path, true
	}

	if !g.done {
		g.done = true
		g.readErr = g.scanner.Err()
		g.Close()
	}
	return "", false
}

// Err returns the stream read error that ended iteration, if any. Normal
// exhaustion leaves it nil.
func (g *Generator) Err() error {
	return g.readErr
}

// cleanLine strips the UTF-8 BOM from the first line read and trims
// surrounding whitespace including line terminators.
func (g *Generator) cleanLine(line []byte) []byte {
	if g.firstLine {
		g.firstLine = false
		line = bytes.TrimPrefix(line, utf8BOM)
	}
	return bytes.TrimSpace(line)
}

// Errors returns how many entries failed to resolve so far.
func (g *Generator) Errors() int {
	return g.errors
}

// Stats returns the per-encoding resolution counts for this playlist.
func (g *Generator) Stats() map[string]int {
	return g.resolver.Stats()
}

// Close releases the underlying file. Safe to call more than once and after
// exhaustion.
func (g *Generator) Close() error {
	if g.file == nil {
		return nil
	}
	err := g.file.Close()
	g.file = nil
	return err
}
