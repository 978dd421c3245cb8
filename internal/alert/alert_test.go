package alert

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	_ = r.Present(context.Background(), "Warning! Health", "Needs checkup")
	_ = r.Present(context.Background(), "Warning! Food", "Low")
	want := []Alert{
		{Title: "Warning! Health", Message: "Needs checkup"},
		{Title: "Warning! Food", Message: "Low"},
	}
	if diff := cmp.Diff(want, r.Alerts()); diff != "" {
		t.Errorf("alerts mismatch (-want +got):\n%s", diff)
	}
}

func TestFunc(t *testing.T) {
	var got string
	s := Func(func(_ context.Context, title, message string) error {
		got = title + "|" + message
		return nil
	})
	if err := s.Present(context.Background(), "t", "m"); err != nil {
		t.Fatal(err)
	}
	if got != "t|m" {
		t.Errorf("got %q", got)
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	if err := (LogSink{Logger: logger}).Present(context.Background(), "Warning! Health", "Needs checkup"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"title":"Warning! Health"`) || !strings.Contains(out, `"message":"Needs checkup"`) {
		t.Errorf("log output = %s", out)
	}
}

func TestInlineSink(t *testing.T) {
	var buf bytes.Buffer
	if err := NewInline(&buf).Present(context.Background(), "Warning! Health", "Needs checkup"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Warning! Health") || !strings.Contains(out, "Needs checkup") {
		t.Errorf("inline output = %q", out)
	}
	if strings.Contains(out, acknowledgeHint) {
		t.Error("inline alert should not ask for acknowledgement")
	}
}

func TestModalModel_AcknowledgeKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		m := newModal("Warning! Health", "Needs checkup", newStyles(&bytes.Buffer{}))
		next, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("key %q: expected quit command", key.String())
		}
		if !next.(modal).acknowledged {
			t.Errorf("key %q: not acknowledged", key.String())
		}
	}
}

func TestModalModel_IgnoresOtherKeys(t *testing.T) {
	m := newModal("Warning! Health", "Needs checkup", newStyles(&bytes.Buffer{}))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Error("unexpected command")
	}
	if next.(modal).acknowledged {
		t.Error("unexpected acknowledgement")
	}
	view := next.View()
	if !strings.Contains(view, "Needs checkup") || !strings.Contains(view, acknowledgeHint) {
		t.Errorf("view = %q", view)
	}
}

func TestNew_ModalFallsBackWithoutTerminal(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	s, err := New(ModeModal, strings.NewReader(""), &bytes.Buffer{}, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*InlineSink); !ok {
		t.Errorf("sink = %T, want *InlineSink", s)
	}
	if _, err := New("popup", nil, nil, logger); err == nil {
		t.Error("expected error for unknown mode")
	}
}
