package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/starford/zoodesk/internal/apperr"
	"github.com/starford/zoodesk/internal/models"
	"github.com/starford/zoodesk/internal/parser"
)

// Result is the outcome of a detail lookup. A query with no matching line is
// a normal result with Found set to false, not an error.
type Result struct {
	Category models.Category    `json:"category"`
	Query    string             `json:"query"`
	Found    bool               `json:"found"`
	Block    models.DetailBlock `json:"block"`
	Warnings []models.Warning   `json:"warnings"`
}

// Resolve finds the detail block for name without presenting any alerts.
//
// The query is capitalized and matched against each line's suffix; the first
// matching line starts the block, which then takes every following line up to
// the first blank line or the end of the file. Warnings are decoded from
// marker lines; malformed ones are logged and left as plain text.
func (s *Service) Resolve(ctx context.Context, category models.Category, name string) Result {
	res := Result{
		Category: category,
		Query:    parser.Capitalize(name),
		Warnings: []models.Warning{},
	}
	if res.Query == "" {
		return res
	}

	matched := false
	err := s.eachLine(category, func(line string) bool {
		if !matched {
			if parser.Matches(line, res.Query, s.opts.MatchMode) {
				matched = true
				res.Block.Header = line
			}
			return true
		}
		if strings.TrimSpace(line) == "" {
			return false
		}
		res.Block.Lines = append(res.Block.Lines, line)
		return true
	})
	if err != nil {
		s.logUnreadable(ctx, category, err)
		return Result{Category: category, Query: res.Query, Warnings: []models.Warning{}}
	}
	if !matched {
		return res
	}

	res.Found = true
	if res.Block.Lines == nil {
		res.Block.Lines = []string{}
	}
	for _, line := range res.Block.Lines {
		if w, ok := s.annotate(ctx, line); ok {
			res.Warnings = append(res.Warnings, w)
		}
	}
	return res
}

// Lookup resolves name and presents each decoded warning to the alert sink,
// in block order.
func (s *Service) Lookup(ctx context.Context, category models.Category, name string) Result {
	res := s.Resolve(ctx, category, name)
	for _, w := range res.Warnings {
		s.present(ctx, w)
	}
	return res
}

// annotate decodes line when it carries the warning marker.
func (s *Service) annotate(ctx context.Context, line string) (models.Warning, bool) {
	if !parser.IsMarkerLine(line) {
		return models.Warning{}, false
	}
	w, err := parser.ParseWarning(line)
	if err != nil {
		if errors.Is(err, apperr.ErrMalformedWarning) {
			s.logger.WarnContext(ctx, "catalog: marker line without category",
				slog.String("line", line))
		}
		return models.Warning{}, false
	}
	return w, true
}

func (s *Service) present(ctx context.Context, w models.Warning) {
	if err := s.sink.Present(ctx, w.Title(), w.Message); err != nil {
		s.logger.ErrorContext(ctx, "catalog: alert failed",
			slog.String("title", w.Title()),
			slog.String("error", err.Error()))
	}
}
