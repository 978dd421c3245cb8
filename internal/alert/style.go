package alert

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var warningColor = lipgloss.Color("#FFC107")

type styles struct {
	box   lipgloss.Style
	title lipgloss.Style
	hint  lipgloss.Style
}

// newStyles binds the warning box to the color profile of w.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warningColor).
			Padding(0, 1),
		title: r.NewStyle().Foreground(warningColor).Bold(true),
		hint:  r.NewStyle().Faint(true),
	}
}

func (s styles) render(title, message, hint string) string {
	body := s.title.Render(title) + "\n\n" + message
	if hint != "" {
		body += "\n\n" + s.hint.Render(hint)
	}
	return s.box.Render(body)
}
