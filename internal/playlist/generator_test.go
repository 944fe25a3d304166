package playlist

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lietu/plstats/internal/shared"
)

// writePlaylist creates a playlist file plus any referenced media fixtures
// in a fresh temp dir and returns the playlist path.
func writePlaylist(t *testing.T, name string, content []byte, media map[string]int) string {
	t.Helper()
	tmpDir := t.TempDir()

	for file, size := range media {
		if err := os.WriteFile(filepath.Join(tmpDir, file), make([]byte, size), 0644); err != nil {
			t.Fatalf("failed to create media fixture %s: %v", file, err)
		}
	}

	source := filepath.Join(tmpDir, name)
	if err := os.WriteFile(source, content, 0644); err != nil {
		t.Fatalf("failed to write playlist: %v", err)
	}
	return source
}

func drain(t *testing.T, g *Generator) []string {
	t.Helper()
	var paths []string
	for {
		path, ok := g.Next()
		if !ok {
			break
		}
		paths = append(paths, path)
	}
	return paths
}

func TestM3UGenerator(t *testing.T) {
	t.Run("skips comments and counts missing entries", func(t *testing.T) {
		source := writePlaylist(t, "list.m3u",
			[]byte("#EXTM3U\nsong1.mp3\n#comment\nmissing.mp3\n"),
			map[string]int{"song1.mp3": 100})

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		paths := drain(t, g)
		if len(paths) != 1 {
			t.Fatalf("expected 1 resolved path, got %d: %v", len(paths), paths)
		}
		if filepath.Base(paths[0]) != "song1.mp3" {
			t.Errorf("unexpected resolved path: %v", paths[0])
		}
		if g.Errors() != 1 {
			t.Errorf("expected 1 error, got %d", g.Errors())
		}
		if g.Stats()["utf-8"] != 1 {
			t.Errorf("expected one utf-8 resolution, got %v", g.Stats())
		}
	})

	t.Run("strips BOM from first line", func(t *testing.T) {
		source := writePlaylist(t, "list.m3u",
			[]byte("\xef\xbb\xbf#EXTM3U\nsong1.mp3\n"),
			map[string]int{"song1.mp3": 10})

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		paths := drain(t, g)
		if len(paths) != 1 {
			t.Fatalf("BOM comment line should be skipped, got paths %v", paths)
		}
		if g.Errors() != 0 {
			t.Errorf("expected no errors, got %d", g.Errors())
		}
	})

	t.Run("strips BOM from first entry line", func(t *testing.T) {
		source := writePlaylist(t, "list.m3u",
			[]byte("\xef\xbb\xbfsong1.mp3\n"),
			map[string]int{"song1.mp3": 10})

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		paths := drain(t, g)
		if len(paths) != 1 || filepath.Base(paths[0]) != "song1.mp3" {
			t.Errorf("expected song1.mp3 resolved, got %v", paths)
		}
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		source := writePlaylist(t, "list.m3u",
			[]byte("\n\nsong1.mp3\n\n"),
			map[string]int{"song1.mp3": 10})

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		paths := drain(t, g)
		if len(paths) != 1 {
			t.Errorf("expected 1 path, got %v", paths)
		}
		if g.Errors() != 0 {
			t.Errorf("blank lines should not count as errors, got %d", g.Errors())
		}
	})

	t.Run("exhausted generator stays exhausted", func(t *testing.T) {
		source := writePlaylist(t, "list.m3u",
			[]byte("song1.mp3\n"),
			map[string]int{"song1.mp3": 10})

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		drain(t, g)
		for i := 0; i < 3; i++ {
			if _, ok := g.Next(); ok {
				t.Fatal("Next after exhaustion should return false")
			}
		}
		if g.Err() != nil {
			t.Errorf("normal exhaustion should leave no read error, got %v", g.Err())
		}
	})

	t.Run("oversized line surfaces a read error", func(t *testing.T) {
		content := append(bytes.Repeat([]byte("a"), 2*1024*1024), []byte("\nsong1.mp3\n")...)
		source := writePlaylist(t, "list.m3u", content,
			map[string]int{"song1.mp3": 10})

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		paths := drain(t, g)
		if len(paths) != 0 {
			t.Errorf("expected no paths after failed read, got %v", paths)
		}
		if g.Err() == nil {
			t.Error("expected a read error to end iteration")
		}
	})

	t.Run("legacy encoded entry resolves", func(t *testing.T) {
		source := writePlaylist(t, "list.m3u",
			[]byte("sk\xe5l.mp3\n"),
			map[string]int{"skål.mp3": 10})

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		paths := drain(t, g)
		if len(paths) != 1 {
			t.Fatalf("expected 1 path, got %v", paths)
		}
		if g.Stats()["latin-1"] != 1 {
			t.Errorf("expected latin-1 resolution, got %v", g.Stats())
		}
	})
}

func TestPLSGenerator(t *testing.T) {
	t.Run("only File lines carry entries", func(t *testing.T) {
		source := writePlaylist(t, "list.pls",
			[]byte("[playlist]\nFile1=track.mp3\nTitle1=X\nLength1=120\nNumberOfEntries=1\nVersion=2\n"),
			map[string]int{"track.mp3": 2048})

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		paths := drain(t, g)
		if len(paths) != 1 {
			t.Fatalf("expected 1 resolved path, got %v", paths)
		}
		if filepath.Base(paths[0]) != "track.mp3" {
			t.Errorf("unexpected resolved path: %v", paths[0])
		}
		if g.Errors() != 0 {
			t.Errorf("metadata lines must not count as errors, got %d", g.Errors())
		}
	})

	t.Run("File line without equals is skipped", func(t *testing.T) {
		source := writePlaylist(t, "list.pls",
			[]byte("FileOops\nFile1=track.mp3\n"),
			map[string]int{"track.mp3": 1})

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		paths := drain(t, g)
		if len(paths) != 1 {
			t.Errorf("expected 1 path, got %v", paths)
		}
		if g.Errors() != 0 {
			t.Errorf("malformed File line must not count as error, got %d", g.Errors())
		}
	})

	t.Run("empty File value exhausts encodings and counts one error", func(t *testing.T) {
		source := writePlaylist(t, "list.pls",
			[]byte("File1=\nFile2=track.mp3\n"),
			map[string]int{"track.mp3": 1})

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		paths := drain(t, g)
		if len(paths) != 1 {
			t.Errorf("expected 1 path, got %v", paths)
		}
		if g.Errors() != 1 {
			t.Errorf("empty File value should count as an error, got %d", g.Errors())
		}
	})

	t.Run("missing File entry counts one error", func(t *testing.T) {
		source := writePlaylist(t, "list.pls",
			[]byte("File1=missing.mp3\nFile2=track.mp3\n"),
			map[string]int{"track.mp3": 1})

		g, err := Open(source, Options{Logger: shared.NewLogger(io.Discard)})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer g.Close()

		paths := drain(t, g)
		if len(paths) != 1 {
			t.Errorf("iteration should continue past failed entries, got %v", paths)
		}
		if g.Errors() != 1 {
			t.Errorf("expected 1 error, got %d", g.Errors())
		}
	})
}
