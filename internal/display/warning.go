package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Paths      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning, colored yellow when out is a terminal.
func (w Warning) Display(out io.Writer) {
	w.Fprint(out, IsTerminal(out))
}

// Fprint writes the warning with color forced on or off.
func (w Warning) Fprint(out io.Writer, colored bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Paths) > 0 {
		if len(w.Paths) == 1 {
			b.WriteString("    Searched path:\n")
		} else {
			b.WriteString("    Searched paths:\n")
		}
		for i, p := range w.Paths {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, p)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	text := b.String()
	if colored {
		c := color.New(color.FgYellow)
		c.EnableColor()
		text = c.Sprint(text)
	}
	fmt.Fprint(out, text)
}

// NoMatches builds the warning shown when a search finds nothing.
func NoMatches(criterion string, roots []string, recursive bool) Warning {
	w := Warning{
		Title:   "No entry matched",
		Message: criterion,
		Paths:   roots,
	}
	if !recursive {
		w.Suggestion = "Only the top level of each root was searched; use --recursive to descend"
	}
	return w
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
