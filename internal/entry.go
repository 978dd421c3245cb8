// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/zoodesk/internal/alert"
	"github.com/starford/zoodesk/internal/catalog"
	"github.com/starford/zoodesk/internal/console"
	"github.com/starford/zoodesk/internal/mcpserver"
	"github.com/starford/zoodesk/internal/models"
	"github.com/starford/zoodesk/internal/storage"
	"github.com/starford/zoodesk/internal/watch"
)

// runtime holds everything built from the configuration.
type runtime struct {
	app    *application
	logger *slog.Logger
	store  *storage.FS
	svc    *catalog.Service
}

func setup(opts []Option) (*runtime, error) {
	app := &application{
		in:      os.Stdin,
		out:     os.Stdout,
		logOut:  os.Stderr,
		version: "dev",
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg := app.config

	handlerOpts := &slog.HandlerOptions{Level: cfg.App.LogLevel}
	var handler slog.Handler = slog.NewJSONHandler(app.logOut, handlerOpts)
	if cfg.App.LogFormat == LogFormatText {
		handler = slog.NewTextHandler(app.logOut, handlerOpts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	mode := cfg.Alerts.Mode
	if app.alertMode != "" {
		mode = app.alertMode
	}

	logger.Debug("Configuration loaded",
		slog.String("catalog_root", cfg.Catalog.Root),
		slog.String("animals_file", cfg.Catalog.AnimalsFilePath),
		slog.String("habitats_file", cfg.Catalog.HabitatsFilePath),
		slog.String("match_mode", string(cfg.Catalog.MatchMode)),
		slog.String("alert_mode", mode),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(cfg.Catalog.Root)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	sink := app.sink
	if sink == nil {
		sink, err = alert.New(mode, app.in, app.out, logger)
		if err != nil {
			return nil, fmt.Errorf("init alerts: %w", err)
		}
	}

	svc := catalog.NewService(store, cfg.Catalog.Options(), sink, logger)
	return &runtime{app: app, logger: logger, store: store, svc: svc}, nil
}

// Run starts the interactive menu and returns when the operator quits.
func Run(ctx context.Context, opts ...Option) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	return console.NewMenu(rt.svc, rt.app.in, rt.app.out).Run(ctx)
}

// RunList prints the record names of category.
func RunList(ctx context.Context, category models.Category, opts ...Option) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	_, err = rt.svc.Listing(ctx, rt.app.out, category)
	return err
}

// RunShow prints the detail view of one record, presenting its warnings.
// A missing record is reported in the output, not as an error.
func RunShow(ctx context.Context, category models.Category, name string, opts ...Option) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	_, err = rt.svc.Render(ctx, rt.app.out, category, name)
	return err
}

// RunWatch prints a fresh listing of the given categories whenever their
// files change, until ctx is cancelled or a shutdown signal arrives.
func RunWatch(ctx context.Context, categories []models.Category, opts ...Option) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return watch.Watch(gCtx, rt.svc, rt.store, rt.app.config.Watch.Debounce, rt.logger,
			func(category models.Category, names []string) {
				fmt.Fprintf(rt.app.out, "Available %s:\n", category)
				for _, n := range names {
					fmt.Fprintf(rt.app.out, "   %s\n", n)
				}
				fmt.Fprintln(rt.app.out)
			}, categories...)
	})

	g.Go(func() error {
		waitForSignal(gCtx, rt.logger)
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil {
		rt.logger.Error("Watch error", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// RunMCP serves the catalog tools over MCP stdio. Alerts are always logged
// since stdout carries the protocol.
func RunMCP(ctx context.Context, opts ...Option) error {
	rt, err := setup(append(opts, WithAlertMode(alert.ModeLog)))
	if err != nil {
		return err
	}
	srv := mcpserver.New(rt.svc, rt.app.version)

	rt.logger.Info("MCP server starting on stdio")
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ServeStdio() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

// waitForSignal blocks until SIGINT/SIGTERM or until ctx is done.
func waitForSignal(ctx context.Context, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
	}
}
