// Package alert presents warning annotations to the operator.
//
// The catalog depends only on Sink. Interactive sessions bind it to a
// terminal modal that blocks until the operator acknowledges the warning;
// headless runs bind it to a logger or a Recorder.
package alert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Sink presents a warning and returns once it has been acknowledged.
type Sink interface {
	Present(ctx context.Context, title, message string) error
}

// Func adapts a plain function to Sink.
type Func func(ctx context.Context, title, message string) error

// Present calls f.
func (f Func) Present(ctx context.Context, title, message string) error {
	return f(ctx, title, message)
}

// Nop discards every alert.
type Nop struct{}

// Present does nothing.
func (Nop) Present(context.Context, string, string) error { return nil }

// Alert is one recorded presentation.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Recorder collects alerts instead of showing them.
type Recorder struct {
	mu     sync.Mutex
	alerts []Alert
}

// Present appends the alert.
func (r *Recorder) Present(_ context.Context, title, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, Alert{Title: title, Message: message})
	return nil
}

// Alerts returns a copy of everything recorded so far.
func (r *Recorder) Alerts() []Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Alert, len(r.alerts))
	copy(out, r.alerts)
	return out
}

// LogSink writes alerts to a structured logger and continues immediately.
type LogSink struct {
	Logger *slog.Logger
}

// Present logs the alert at warn level.
func (s LogSink) Present(ctx context.Context, title, message string) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.WarnContext(ctx, "catalog warning",
		slog.String("title", title),
		slog.String("message", message))
	return nil
}

// Modes accepted by New.
const (
	ModeModal  = "modal"
	ModeInline = "inline"
	ModeLog    = "log"
)

// New builds the sink for mode. A modal sink needs a terminal on in; when in
// is not one it degrades to an inline sink on out.
func New(mode string, in io.Reader, out io.Writer, logger *slog.Logger) (Sink, error) {
	switch mode {
	case ModeModal:
		if !isTerminal(in) {
			logger.Debug("alert: input is not a terminal, using inline alerts")
			return NewInline(out), nil
		}
		return NewModal(in, out), nil
	case ModeInline:
		return NewInline(out), nil
	case ModeLog:
		return LogSink{Logger: logger}, nil
	default:
		return nil, fmt.Errorf("alert: unknown mode %q", mode)
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
