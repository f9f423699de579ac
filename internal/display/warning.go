package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/csvsearch/internal/models"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
	Color      bool     // Render in yellow
}

// Display shows a formatted warning
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Affected file:\n")
		} else {
			b.WriteString("    Affected files:\n")
		}
		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	text := b.String()
	if w.Color {
		c := color.New(color.FgYellow)
		c.EnableColor()
		text = c.Sprint(text)
	}
	fmt.Fprint(out, text)
}

// WarnFailedFiles builds the warning listing files that contributed no matches
func WarnFailedFiles(errs []*models.FileError) Warning {
	files := make([]string, len(errs))
	for i, err := range errs {
		files[i] = err.Error()
	}

	title := fmt.Sprintf("%d files could not be searched", len(errs))
	if len(errs) == 1 {
		title = "1 file could not be searched"
	}

	return Warning{
		Title:      title,
		Message:    "Rows from these files are not included in the results",
		Files:      files,
		Suggestion: "Check that each file is readable UTF-8 CSV with balanced quotes",
	}
}
