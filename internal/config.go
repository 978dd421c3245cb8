package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/zoodesk/internal/alert"
	"github.com/starford/zoodesk/internal/catalog"
	"github.com/starford/zoodesk/internal/parser"
)

// Log formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Catalog CatalogConfig     `yaml:"catalog"`
	Alerts  AlertsConfig      `yaml:"alerts"`
	Watch   WatchConfig       `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Catalog.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if err := c.Alerts.Validate(); err != nil {
		return fmt.Errorf("alerts: %w", err)
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatJSON, LogFormatText)),
	)
}

// CatalogConfig locates the catalog files. The two file paths are relative
// to Root and keep the key names of the original properties file.
type CatalogConfig struct {
	Root             string           `yaml:"root"`
	AnimalsFilePath  string           `yaml:"animalsFilePath"`
	HabitatsFilePath string           `yaml:"habitatsFilePath"`
	MatchMode        parser.MatchMode `yaml:"match_mode"`
}

// Validate validates the catalog configuration.
func (c *CatalogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.AnimalsFilePath, validation.Required),
		validation.Field(&c.HabitatsFilePath, validation.Required),
		validation.Field(&c.MatchMode, validation.In(parser.MatchSuffix, parser.MatchWord)),
	)
}

// Options converts the section into catalog service options.
func (c *CatalogConfig) Options() catalog.Options {
	return catalog.Options{
		AnimalsPath:  c.AnimalsFilePath,
		HabitatsPath: c.HabitatsFilePath,
		MatchMode:    c.MatchMode,
	}
}

// AlertsConfig selects how warning annotations reach the operator.
//
// Mode is one of:
//   - "modal" (default): a terminal dialog that waits for Enter.
//   - "inline": a boxed warning in the output, no wait.
//   - "log": a structured log record only.
type AlertsConfig struct {
	Mode string `yaml:"mode"`
}

// Validate validates the alerts configuration.
func (c *AlertsConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = alert.ModeModal
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.In(alert.ModeModal, alert.ModeInline, alert.ModeLog)),
	)
}

// WatchConfig tunes the catalog file watcher.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Debounce, validation.Min(time.Duration(0))),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatJSON,
		},
		Catalog: CatalogConfig{
			Root:             "./data",
			AnimalsFilePath:  "animals.txt",
			HabitatsFilePath: "habitats.txt",
			MatchMode:        parser.MatchSuffix,
		},
		Alerts: AlertsConfig{
			Mode: alert.ModeModal,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}
