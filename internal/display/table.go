package display

import (
	"fmt"
	"io"

	"github.com/harrison/csvsearch/internal/models"
	"github.com/olekukonko/tablewriter"
)

// renderTable prints the count, the summary table and the per-match detail tables
func (r *Renderer) renderTable(matches []models.MatchRecord) error {
	if _, err := fmt.Fprintf(r.out, "\n%s\n\n", r.heading(countLine(len(matches)))); err != nil {
		return err
	}

	if len(r.opts.SummaryColumns) > 0 {
		summary := r.newTable(r.out)
		summary.SetHeader(r.opts.SummaryColumns)
		for _, m := range matches {
			summary.Append(r.fit(SummaryRow(m, r.opts.SummaryColumns)))
		}
		summary.Render()
	}

	if _, err := fmt.Fprintf(r.out, "\n%s\n", r.heading("Details:")); err != nil {
		return err
	}

	for _, m := range matches {
		if _, err := fmt.Fprintf(r.out, "\n%s %s (line %d)\n", r.label("File:"), m.File, m.Line); err != nil {
			return err
		}

		header, row := detailTable(m)
		detail := r.newTable(r.out)
		if header != nil {
			detail.SetHeader(header)
		}
		detail.Append(row)
		detail.Render()
	}

	return nil
}

func (r *Renderer) newTable(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return t
}
