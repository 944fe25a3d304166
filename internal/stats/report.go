package stats

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/lietu/plstats/internal/shared"
)

// Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	label lipgloss.Style
	warn  lipgloss.Style
}

// NewPalette builds a Palette from title, label and warning colors.
func NewPalette(t, l, w string) *Palette {
	return &Palette{
		title: lipgloss.NewStyle().Foreground(lipgloss.Color(t)).Bold(true),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color(l)),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color(w)).Bold(true),
	}
}

func plainPalette() *Palette {
	return &Palette{
		title: lipgloss.NewStyle(),
		label: lipgloss.NewStyle(),
		warn:  lipgloss.NewStyle(),
	}
}

// Reporter renders per-playlist and totals summaries to an output writer.
type Reporter struct {
	out    io.Writer
	styles *Palette
}

// NewReporter creates a Reporter writing to out. With color disabled all
// styling is dropped, which also keeps output stable for tests and pipes.
func NewReporter(out io.Writer, color bool) *Reporter {
	styles := plainPalette()
	if color {
		styles = NewPalette("#7D56F4", "#626262", "#FFA500")
	}
	return &Reporter{out: out, styles: styles}
}

// Playlist writes the summary block for one processed playlist.
func (r *Reporter) Playlist(ps PlaylistStats) {
	fmt.Fprintln(r.out, r.styles.title.Render(fmt.Sprintf("Playlist %s", ps.Source)))
	fmt.Fprintf(r.out, "  %s %d\n", r.styles.label.Render("Files:  "), ps.Files)
	fmt.Fprintf(r.out, "  %s %s\n", r.styles.label.Render("Size:   "), shared.FormatSize(ps.Size))
	fmt.Fprintf(r.out, "  %s %s\n", r.styles.label.Render("Errors: "), r.renderErrors(ps.Errors))
	fmt.Fprintf(r.out, "  %s %.2fs\n", r.styles.label.Render("Elapsed:"), ps.Elapsed.Seconds())
}

// Totals writes the whole-run summary block.
func (r *Reporter) Totals(ts TotalStats) {
	fmt.Fprintln(r.out, r.styles.title.Render("Totals"))
	fmt.Fprintf(r.out, "  %s %d\n", r.styles.label.Render("Playlists:"), ts.Sources)
	if ts.Failed > 0 {
		fmt.Fprintf(r.out, "  %s %s\n", r.styles.label.Render("Failed:   "), r.styles.warn.Render(fmt.Sprintf("%d", ts.Failed)))
	}
	fmt.Fprintf(r.out, "  %s %d\n", r.styles.label.Render("Files:    "), ts.Files)
	fmt.Fprintf(r.out, "  %s %s\n", r.styles.label.Render("Size:     "), shared.FormatSize(ts.Size))
	fmt.Fprintf(r.out, "  %s %s\n", r.styles.label.Render("Errors:   "), r.renderErrors(ts.Errors))
	fmt.Fprintf(r.out, "  %s %.2fs\n", r.styles.label.Render("Elapsed:  "), ts.Elapsed.Seconds())
}

func (r *Reporter) renderErrors(n int) string {
	s := fmt.Sprintf("%d", n)
	if n > 0 {
		return r.styles.warn.Render(s)
	}
	return s
}
