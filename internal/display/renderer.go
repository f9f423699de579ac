package display

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/harrison/csvsearch/internal/config"
	"github.com/harrison/csvsearch/internal/models"
)

// NoMatchesMessage is the whole output of a search that found nothing
const NoMatchesMessage = "No matches found."

// Options configures a Renderer
type Options struct {
	Format         string   // One of config.Formats; empty means table
	SummaryColumns []string // Header names shown in the summary table
	MaxCellWidth   int      // Truncate longer summary cells (0 = unlimited); details are never cut
	Color          bool     // Emit ANSI colours for headings
}

// Renderer writes match results to an output stream
type Renderer struct {
	out  io.Writer
	opts Options
}

// NewRenderer creates a Renderer writing to out
func NewRenderer(out io.Writer, opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = config.FormatTable
	}
	return &Renderer{out: out, opts: opts}
}

// Render writes the configured view of matches
func (r *Renderer) Render(matches []models.MatchRecord) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(r.out, NoMatchesMessage)
		return err
	}

	switch r.opts.Format {
	case config.FormatPlain:
		return r.renderPlain(matches)
	case config.FormatTable:
		return r.renderTable(matches)
	case config.FormatMarkdown:
		return r.renderMarkdown(r.out, matches)
	case config.FormatHTML:
		return r.renderHTML(matches)
	default:
		return fmt.Errorf("unknown output format %q", r.opts.Format)
	}
}

// SummaryRow resolves columns against m's own header; absent or out-of-range columns are ""
func SummaryRow(m models.MatchRecord, columns []string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = m.Value(col)
	}
	return row
}

// detailTable lines a record's header and cells up to the same width.
// A nil header stays nil so the table is drawn without labels.
func detailTable(m models.MatchRecord) (header, row []string) {
	width := len(m.Row)
	if len(m.Header) > width {
		width = len(m.Header)
	}

	row = pad(m.Row, width)
	if m.Header != nil {
		header = pad(m.Header, width)
	}
	return header, row
}

func pad(cells []string, width int) []string {
	out := make([]string, width)
	copy(out, cells)
	return out
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 3 {
		return string([]rune(s)[:max])
	}
	return string([]rune(s)[:max-3]) + "..."
}

// fit truncates summary cells to MaxCellWidth
func (r *Renderer) fit(cells []string) []string {
	if r.opts.MaxCellWidth <= 0 {
		return cells
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = truncate(c, r.opts.MaxCellWidth)
	}
	return out
}

func (r *Renderer) heading(s string) string {
	if !r.opts.Color {
		return s
	}
	c := color.New(color.Bold)
	c.EnableColor()
	return c.Sprint(s)
}

func (r *Renderer) label(s string) string {
	if !r.opts.Color {
		return s
	}
	c := color.New(color.FgCyan)
	c.EnableColor()
	return c.Sprint(s)
}

func countLine(n int) string {
	return fmt.Sprintf("Found %d matches:", n)
}
