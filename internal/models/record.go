// Package models defines the domain types for zoodesk.
package models

// Category selects which catalog file and which name-extraction rule apply.
type Category int

const (
	Animals Category = iota
	Habitats
)

// String returns the lower-case identifier used in config and on the CLI.
func (c Category) String() string {
	switch c {
	case Animals:
		return "animals"
	case Habitats:
		return "habitats"
	default:
		return "unknown"
	}
}

// MarshalText encodes the category by its identifier.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// DisplayName returns the capitalized category name, e.g. "Animals".
func (c Category) DisplayName() string {
	switch c {
	case Animals:
		return "Animals"
	case Habitats:
		return "Habitats"
	default:
		return "Unknown"
	}
}

// Categories lists every category in menu order.
func Categories() []Category {
	return []Category{Animals, Habitats}
}

// DetailBlock is the header line of a record followed by its contiguous
// non-blank detail lines.
type DetailBlock struct {
	Header string   `json:"header"`
	Lines  []string `json:"lines"`
}

// All returns the header followed by the detail lines.
func (b DetailBlock) All() []string {
	out := make([]string, 0, len(b.Lines)+1)
	out = append(out, b.Header)
	return append(out, b.Lines...)
}

// Warning is an annotation decoded from a marker line of a detail block.
type Warning struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Line     string `json:"line"`
}

// Title returns the alert title for the warning.
func (w Warning) Title() string {
	return "Warning! " + w.Category
}
