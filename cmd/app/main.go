package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/zoodesk/internal"
	"github.com/starford/zoodesk/internal/catalog"
	"github.com/starford/zoodesk/internal/models"
	pkgconfig "github.com/starford/zoodesk/pkg/config"
)

var version = "dev"

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	found, err := pkgconfig.LoadOptional(configPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !found {
		slog.Warn("config file not found, using defaults", slog.String("path", configPath))
	}
	if root := cmd.String("catalog-root"); root != "" {
		cfg.Catalog.Root = root
	}
	return cfg, nil
}

func options(cmd *cli.Command, cfg *internal.Config) []internal.Option {
	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithVersion(version),
	}
	if mode := cmd.String("alerts"); mode != "" {
		opts = append(opts, internal.WithAlertMode(mode))
	}
	return opts
}

func categoryArg(cmd *cli.Command) (models.Category, error) {
	if cmd.Args().Len() < 1 {
		return 0, fmt.Errorf("category argument is required (animals or habitats)")
	}
	return catalog.ParseCategory(cmd.Args().First())
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, options(cmd, cfg)...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func list(ctx context.Context, cmd *cli.Command) error {
	category, err := categoryArg(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.RunList(ctx, category, options(cmd, cfg)...)
}

func show(ctx context.Context, cmd *cli.Command) error {
	category, err := categoryArg(cmd)
	if err != nil {
		return err
	}
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("name argument is required")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.RunShow(ctx, category, cmd.Args().Get(1), options(cmd, cfg)...)
}

func watchCatalog(ctx context.Context, cmd *cli.Command) error {
	var categories []models.Category
	for _, arg := range cmd.Args().Slice() {
		c, err := catalog.ParseCategory(arg)
		if err != nil {
			return err
		}
		categories = append(categories, c)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.RunWatch(ctx, categories, options(cmd, cfg)...)
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.RunMCP(ctx, options(cmd, cfg)...)
}

func main() {
	cmd := &cli.Command{
		Name:    "zoodesk",
		Usage:   "Browse zoo animal and habitat catalogs and surface their warnings",
		Version: version,
		Action:  run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "catalog-root",
				Usage:   "Directory the catalog file paths are relative to",
				Sources: cli.EnvVars("ZOODESK_CATALOG_ROOT"),
			},
			&cli.StringFlag{
				Name:  "alerts",
				Usage: "Alert presentation: modal, inline or log",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List record names of a catalog",
				ArgsUsage: "<animals|habitats>",
				Action:    list,
			},
			{
				Name:      "show",
				Usage:     "Show the details of one record",
				ArgsUsage: "<animals|habitats> <name>",
				Action:    show,
			},
			{
				Name:      "watch",
				Usage:     "Print a fresh listing whenever a catalog file changes",
				ArgsUsage: "[animals|habitats ...]",
				Action:    watchCatalog,
			},
			{
				Name:   "mcp",
				Usage:  "Serve catalog queries over MCP stdio",
				Action: serveMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
