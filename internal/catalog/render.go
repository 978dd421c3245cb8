package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/starford/zoodesk/internal/models"
)

// Render writes the detail view for name to w:
//
//	Lion Animals Details:
//
//	Animal - Lion
//	Name: Leo
//	...
//
// Each warning is presented to the alert sink before its line is written.
// A missing record writes "Error: <Name> not found in system.".
func (s *Service) Render(ctx context.Context, w io.Writer, category models.Category, name string) (Result, error) {
	res := s.Resolve(ctx, category, name)

	if _, err := fmt.Fprintf(w, "%s %s Details:\n\n", res.Query, category.DisplayName()); err != nil {
		return res, err
	}
	if !res.Found {
		_, err := fmt.Fprintf(w, "Error: %s not found in system.\n", res.Query)
		return res, err
	}

	if _, err := fmt.Fprintln(w, res.Block.Header); err != nil {
		return res, err
	}
	pending := res.Warnings
	for _, line := range res.Block.Lines {
		if len(pending) > 0 && pending[0].Line == line {
			s.present(ctx, pending[0])
			pending = pending[1:]
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Listing writes "Available <category>:" followed by each name indented by
// three spaces.
func (s *Service) Listing(ctx context.Context, w io.Writer, category models.Category) ([]string, error) {
	names := s.ListNames(ctx, category)
	if _, err := fmt.Fprintf(w, "Available %s:\n", category); err != nil {
		return names, err
	}
	for _, n := range names {
		if _, err := fmt.Fprintf(w, "   %s\n", n); err != nil {
			return names, err
		}
	}
	return names, nil
}
