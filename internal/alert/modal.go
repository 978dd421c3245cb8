package alert

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

const acknowledgeHint = "Press Enter to acknowledge"

// ModalSink runs a small bubbletea program per alert and blocks until the
// operator dismisses it.
type ModalSink struct {
	in  io.Reader
	out io.Writer
}

// NewModal creates a ModalSink reading keys from in and drawing to out.
func NewModal(in io.Reader, out io.Writer) *ModalSink {
	return &ModalSink{in: in, out: out}
}

// Present shows the modal and waits for acknowledgement.
func (s *ModalSink) Present(ctx context.Context, title, message string) error {
	p := tea.NewProgram(newModal(title, message, newStyles(s.out)),
		tea.WithContext(ctx),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alert: modal: %w", err)
	}
	return nil
}

type modal struct {
	title        string
	message      string
	styles       styles
	acknowledged bool
}

func newModal(title, message string, st styles) modal {
	return modal{title: title, message: message, styles: st}
}

func (m modal) Init() tea.Cmd { return nil }

func (m modal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "enter", "ctrl+j", "esc", "q", " ":
		m.acknowledged = true
		return m, tea.Quit
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m modal) View() string {
	hint := acknowledgeHint
	if m.acknowledged {
		hint = ""
	}
	return m.styles.render(m.title, m.message, hint) + "\n"
}
