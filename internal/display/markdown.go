package display

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/harrison/csvsearch/internal/models"
	"github.com/olekukonko/tablewriter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// renderMarkdown writes the table view as GitHub-flavoured markdown
func (r *Renderer) renderMarkdown(w io.Writer, matches []models.MatchRecord) error {
	var b bytes.Buffer

	fmt.Fprintf(&b, "%s\n\n", countLine(len(matches)))
	if len(r.opts.SummaryColumns) > 0 {
		b.WriteString("## Summary\n\n")
		summary := newMarkdownTable(&b)
		summary.SetHeader(escapeCells(r.opts.SummaryColumns))
		for _, m := range matches {
			summary.Append(escapeCells(r.fit(SummaryRow(m, r.opts.SummaryColumns))))
		}
		summary.Render()
	}

	b.WriteString("\n## Details\n")

	for _, m := range matches {
		fmt.Fprintf(&b, "\n**File:** %s (line %d)\n\n", codeSpan(m.File), m.Line)

		header, row := detailTable(m)
		if header == nil {
			// GFM tables cannot be headerless
			header = make([]string, len(row))
			for i := range header {
				header[i] = fmt.Sprintf("Column %d", i+1)
			}
		}
		detail := newMarkdownTable(&b)
		detail.SetHeader(escapeCells(header))
		detail.Append(escapeCells(row))
		detail.Render()
	}

	_, err := w.Write(b.Bytes())
	return err
}

// renderHTML converts the markdown view to HTML
func (r *Renderer) renderHTML(matches []models.MatchRecord) error {
	var src bytes.Buffer
	if err := r.renderMarkdown(&src, matches); err != nil {
		return err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := md.Convert(src.Bytes(), r.out); err != nil {
		return fmt.Errorf("failed to convert results to HTML: %w", err)
	}
	return nil
}

func newMarkdownTable(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	t.SetCenterSeparator("|")
	return t
}

// codeSpan wraps s in a code span whose fence is longer than any backtick run inside it
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, c := range s {
		if c == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}

	fence := strings.Repeat("`", longest+1)
	if longest > 0 {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markdownEscaper.Replace(c)
	}
	return out
}
