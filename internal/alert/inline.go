package alert

import (
	"context"
	"fmt"
	"io"
)

// InlineSink draws the warning box into the output stream and continues.
type InlineSink struct {
	out    io.Writer
	styles styles
}

// NewInline creates an InlineSink writing to out.
func NewInline(out io.Writer) *InlineSink {
	return &InlineSink{out: out, styles: newStyles(out)}
}

// Present writes the rendered warning followed by a newline.
func (s *InlineSink) Present(_ context.Context, title, message string) error {
	if _, err := fmt.Fprintln(s.out, s.styles.render(title, message, "")); err != nil {
		return fmt.Errorf("alert: inline: %w", err)
	}
	return nil
}
