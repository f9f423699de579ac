package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ProgressIndicator prints one line per file as the scan opens it
type ProgressIndicator struct {
	writer      io.Writer
	total       int
	current     int
	colorOutput bool
}

// NewProgressIndicator creates a progress indicator writing to w
func NewProgressIndicator(w io.Writer, colorOutput bool) *ProgressIndicator {
	return &ProgressIndicator{
		writer:      w,
		colorOutput: colorOutput,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start(total int) {
	p.total = total
	p.current = 0
	fmt.Fprintf(p.writer, "Scanning %d CSV files:\n", total)
}

// Step displays progress for the file being opened: [N/Total] path
func (p *ProgressIndicator) Step(path string) {
	p.current++
	line := fmt.Sprintf("  [%d/%d] %s", p.current, p.total, path)
	if p.colorOutput {
		c := color.New(color.FgCyan)
		c.EnableColor()
		line = c.Sprint(line)
	}
	fmt.Fprintln(p.writer, line)
}

// Complete displays the closing line with a checkmark
func (p *ProgressIndicator) Complete() {
	mark := "✓"
	if p.colorOutput {
		c := color.New(color.FgGreen)
		c.EnableColor()
		mark = c.Sprint(mark)
	}
	fmt.Fprintf(p.writer, "%s Scanned %d files\n", mark, p.current)
}
