// Package catalog implements the record lookup engine over the animal and
// habitat catalog files. Each operation opens its file, scans it once, and
// closes it; nothing is cached between calls.
package catalog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/starford/zoodesk/internal/alert"
	"github.com/starford/zoodesk/internal/apperr"
	"github.com/starford/zoodesk/internal/models"
	"github.com/starford/zoodesk/internal/parser"
	"github.com/starford/zoodesk/internal/storage"
)

const maxLineSize = 1 << 20

// Options locates the catalog files and selects the lookup rule.
type Options struct {
	AnimalsPath  string
	HabitatsPath string
	MatchMode    parser.MatchMode
}

// Service answers name listings and detail lookups.
type Service struct {
	store  storage.Provider
	opts   Options
	sink   alert.Sink
	logger *slog.Logger
}

// NewService creates a catalog service. A nil sink discards alerts and a nil
// logger uses slog.Default.
func NewService(store storage.Provider, opts Options, sink alert.Sink, logger *slog.Logger) *Service {
	if sink == nil {
		sink = alert.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MatchMode == "" {
		opts.MatchMode = parser.MatchSuffix
	}
	return &Service{store: store, opts: opts, sink: sink, logger: logger}
}

// WithSink returns a copy of s that presents alerts to sink.
func (s *Service) WithSink(sink alert.Sink) *Service {
	c := *s
	if sink == nil {
		sink = alert.Nop{}
	}
	c.sink = sink
	return &c
}

// Path returns the resource path backing category.
func (s *Service) Path(category models.Category) (string, error) {
	var p string
	switch category {
	case models.Animals:
		p = s.opts.AnimalsPath
	case models.Habitats:
		p = s.opts.HabitatsPath
	default:
		return "", fmt.Errorf("catalog: %d: %w", category, apperr.ErrUnknownCategory)
	}
	if p == "" {
		return "", fmt.Errorf("catalog: %s path: %w", category, apperr.ErrConfigMissing)
	}
	return p, nil
}

// ParseCategory accepts "animals"/"habitats" and the menu shortcuts "a"/"h",
// ignoring case.
func ParseCategory(s string) (models.Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "animals", "animal", "a":
		return models.Animals, nil
	case "habitats", "habitat", "h":
		return models.Habitats, nil
	}
	return 0, fmt.Errorf("catalog: %q: %w", s, apperr.ErrUnknownCategory)
}

// eachLine opens category's file and feeds its lines to fn until fn returns
// false or the file ends. The file is closed on every path.
func (s *Service) eachLine(category models.Category, fn func(line string) bool) error {
	path, err := s.Path(category)
	if err != nil {
		return err
	}
	rc, err := s.store.Open(path)
	if err != nil {
		return fmt.Errorf("catalog: %w: %w", apperr.ErrResourceUnreadable, err)
	}
	defer rc.Close()
	if err := scanLines(rc, fn); err != nil {
		return fmt.Errorf("catalog: read %s: %w: %w", path, apperr.ErrResourceUnreadable, err)
	}
	return nil
}

func scanLines(r io.Reader, fn func(line string) bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if !fn(sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

func (s *Service) logUnreadable(ctx context.Context, category models.Category, err error) {
	level := slog.LevelWarn
	if errors.Is(err, apperr.ErrConfigMissing) || errors.Is(err, apperr.ErrUnknownCategory) {
		level = slog.LevelError
	}
	s.logger.Log(ctx, level, "catalog: scan failed",
		slog.String("category", category.String()),
		slog.String("error", err.Error()))
}
