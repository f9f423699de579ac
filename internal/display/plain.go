package display

import (
	"fmt"
	"strings"

	"github.com/harrison/csvsearch/internal/models"
)

// renderPlain prints the count and one File/Line pair per match
func (r *Renderer) renderPlain(matches []models.MatchRecord) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(r.heading(countLine(len(matches))))
	b.WriteString("\n")

	for _, m := range matches {
		b.WriteString(fmt.Sprintf("\n%s %s\n", r.label("File:"), m.File))
		b.WriteString(fmt.Sprintf("%s %s\n", r.label(fmt.Sprintf("Line %d:", m.Line)), m.Text()))
	}

	_, err := fmt.Fprint(r.out, b.String())
	return err
}
