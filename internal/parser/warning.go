package parser

import (
	"fmt"
	"strings"

	"github.com/starford/zoodesk/internal/apperr"
	"github.com/starford/zoodesk/internal/models"
)

// WarningMarker flags a detail line as a warning annotation.
const WarningMarker = "*"

// IsMarkerLine reports whether line starts or ends with the warning marker,
// ignoring surrounding whitespace.
func IsMarkerLine(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, WarningMarker) || strings.HasSuffix(t, WarningMarker)
}

// ParseWarning decodes a marker line of the form "*Category: Message*".
//
// Every marker character is blanked out and the result trimmed; the text
// before the first colon is the category and the text after the colon,
// minus one space, is the message. A line without a colon yields
// apperr.ErrMalformedWarning.
func ParseWarning(line string) (models.Warning, error) {
	stripped := strings.TrimSpace(strings.ReplaceAll(line, WarningMarker, " "))
	category, message, ok := strings.Cut(stripped, ":")
	if !ok {
		return models.Warning{}, fmt.Errorf("parser: %q: %w", line, apperr.ErrMalformedWarning)
	}
	return models.Warning{
		Category: category,
		Message:  strings.TrimPrefix(message, " "),
		Line:     line,
	}, nil
}
