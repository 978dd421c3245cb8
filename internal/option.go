package internal

import (
	"io"

	"github.com/starford/zoodesk/internal/alert"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config    *Config
	in        io.Reader
	out       io.Writer
	logOut    io.Writer
	sink      alert.Sink
	alertMode string
	version   string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithIO sets the operator input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *application) {
		a.in = in
		a.out = out
	}
}

// WithLogOutput sets where structured logs are written.
func WithLogOutput(w io.Writer) Option {
	return func(a *application) {
		a.logOut = w
	}
}

// WithAlertMode overrides the configured alert mode.
func WithAlertMode(mode string) Option {
	return func(a *application) {
		a.alertMode = mode
	}
}

// WithAlertSink replaces the alert sink built from the alert mode.
func WithAlertSink(sink alert.Sink) Option {
	return func(a *application) {
		a.sink = sink
	}
}

// WithVersion sets the version reported by the MCP server.
func WithVersion(v string) Option {
	return func(a *application) {
		a.version = v
	}
}
