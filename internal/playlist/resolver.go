package playlist

import (
	"fmt"
	"os"
	"strings"

	"github.com/lietu/plstats/internal/charset"
	"github.com/lietu/plstats/internal/shared"
)

// Resolver turns raw playlist entry bytes into verified filesystem paths.
//
// Playlist files are commonly written by tools on inconsistent locales with
// no declared encoding, so the entry bytes are trial-decoded against an
// ordered list of candidate encodings and each candidate path is checked for
// existence. The first decode that yields an existing path wins.
type Resolver struct {
	basePath string
	windows  bool
	charsets []charset.Charset
	stats    map[string]int
}

// NewResolver creates a Resolver for entries relative to basePath. The
// windows flag selects Windows path rules (drive-relative entries, backslash
// separators) and should reflect the host the playlist is resolved on.
func NewResolver(basePath string, windows bool, charsets []charset.Charset) *Resolver {
	if len(charsets) == 0 {
		charsets = charset.Default()
	}
	return &Resolver{
		basePath: basePath,
		windows:  windows,
		charsets: charsets,
		stats:    map[string]int{},
	}
}

// Resolve decodes raw entry bytes and returns the first candidate path that
// exists on disk, trying each configured encoding in order. Encodings that
// cannot decode the bytes are skipped. Fails with [shared.ErrEntryNotFound]
// when no encoding yields an existing path.
func (r *Resolver) Resolve(raw []byte) (string, error) {
	for _, cs := range r.charsets {
		decoded, err := cs.Decode(raw)
		if err != nil || decoded == "" {
			continue
		}

		candidate := r.candidate(decoded)
		if _, err := os.Stat(candidate); err == nil {
			// Record matched encodings so the trial order can be tuned
			r.stats[cs.Name]++
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %q", shared.ErrEntryNotFound, raw)
}

// Stats returns the count of successful resolutions per encoding name.
func (r *Resolver) Stats() map[string]int {
	return r.stats
}

// candidate builds the path to test for a decoded entry, then normalizes
// separators so playlists authored on the opposite platform still resolve.
func (r *Resolver) candidate(decoded string) string {
	var joined string
	switch {
	case r.windows && strings.HasPrefix(decoded, `\`):
		// Entry is absolute on the current drive: join against the
		// drive component of the base path
		drive, _, _ := strings.Cut(r.basePath, `\`)
		joined = drive + decoded
	case r.isAbs(decoded):
		joined = decoded
	default:
		joined = r.join(r.basePath, decoded)
	}

	if r.windows {
		return strings.ReplaceAll(joined, "/", `\`)
	}
	return strings.ReplaceAll(joined, `\`, "/")
}

func (r *Resolver) isAbs(p string) bool {
	if r.windows {
		return (len(p) >= 2 && p[1] == ':') || strings.HasPrefix(p, `\\`)
	}
	return strings.HasPrefix(p, "/")
}

func (r *Resolver) join(base, entry string) string {
	if base == "" {
		return entry
	}
	sep := "/"
	if r.windows {
		sep = `\`
	}
	return strings.TrimRight(base, `/\`) + sep + entry
}
