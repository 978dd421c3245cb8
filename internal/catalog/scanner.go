package catalog

import (
	"context"

	"github.com/starford/zoodesk/internal/models"
	"github.com/starford/zoodesk/internal/parser"
)

// ScanNames returns the names of every record header in category's file, in
// file order. Duplicates in the file are kept.
func (s *Service) ScanNames(category models.Category) ([]string, error) {
	names := []string{}
	err := s.eachLine(category, func(line string) bool {
		if parser.IsHeader(line) {
			names = append(names, parser.ExtractName(line, category))
		}
		return true
	})
	if err != nil {
		return []string{}, err
	}
	return names, nil
}

// ListNames is ScanNames with read failures logged and reported as an empty
// listing.
func (s *Service) ListNames(ctx context.Context, category models.Category) []string {
	names, err := s.ScanNames(category)
	if err != nil {
		s.logUnreadable(ctx, category, err)
	}
	return names
}
