package playlist

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lietu/plstats/internal/shared"
)

func TestOpen(t *testing.T) {
	t.Run("unsupported extension fails before any I/O", func(t *testing.T) {
		// The path deliberately doesn't exist: dispatch must reject the
		// extension without ever trying to open the file.
		_, err := Open("/nowhere/list.xspf", Options{Logger: shared.NewLogger(io.Discard)})
		if !errors.Is(err, shared.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("extension match is case insensitive", func(t *testing.T) {
		tmpDir := t.TempDir()
		source := filepath.Join(tmpDir, "LIST.M3U")
		if err := os.WriteFile(source, []byte("song1.mp3\n"), 0644); err != nil {
			t.Fatalf("failed to write playlist: %v", err)
		}

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		g.Close()
	})

	t.Run("pls extension selects the PLS parser", func(t *testing.T) {
		tmpDir := t.TempDir()
		source := filepath.Join(tmpDir, "list.pls")
		if err := os.WriteFile(source, []byte("song1.mp3\n"), 0644); err != nil {
			t.Fatalf("failed to write playlist: %v", err)
		}
		if err := os.WriteFile(filepath.Join(tmpDir, "song1.mp3"), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write media fixture: %v", err)
		}

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		// A bare path line is not a PLS entry, so nothing resolves.
		if path, ok := g.Next(); ok {
			t.Errorf("expected no entries from PLS parser, got %v", path)
		}
	})

	t.Run("missing playlist file fails on open", func(t *testing.T) {
		_, err := Open("/nowhere/list.m3u", Options{Logger: shared.NewLogger(io.Discard)})
		if err == nil {
			t.Fatal("expected error for missing playlist")
		}
		if errors.Is(err, shared.ErrUnsupportedFormat) {
			t.Errorf("missing file should not be an unsupported format error: %v", err)
		}
	})
}
