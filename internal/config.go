package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/journal/internal/loader"
	"github.com/starford/journal/internal/markdown"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Content ContentConfig     `yaml:"content"`
	SQLite  SQLiteConfig      `yaml:"sqlite"`
	Auth    AuthConfig        `yaml:"auth"`
	Events  EventsConfig      `yaml:"events"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Content.Validate(); err != nil {
		return err
	}
	if err := c.SQLite.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return c.Events.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// ContentConfig describes the content tree the feed is built from.
//
// Recursive picks up documents nested in sub-section folders
// (reads/<sub>/<doc>.md); when false only direct children of a section
// folder are considered. Documents without an ExcerptSeparator line (or
// with an empty separator configured) use their first paragraph.
type ContentConfig struct {
	Root             string `yaml:"root"`
	Recursive        bool   `yaml:"recursive"`
	URLStyle         string `yaml:"url_style"`
	ExcerptSeparator string `yaml:"excerpt_separator"`
	Workers          int    `yaml:"workers"`
}

// Validate validates the content configuration.
func (c *ContentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.URLStyle, validation.Required,
			validation.In(loader.URLStyleClean, loader.URLStyleHTML, loader.URLStyleSource)),
		validation.Field(&c.Workers, validation.Required, validation.Min(1), validation.Max(64)),
	)
}

// LoaderOptions converts the content configuration into loader options.
func (c *ContentConfig) LoaderOptions() loader.Options {
	return loader.Options{
		Recursive:        c.Recursive,
		URLStyle:         c.URLStyle,
		ExcerptSeparator: c.ExcerptSeparator,
		Workers:          c.Workers,
	}
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// AuthConfig holds authentication configuration.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// EventsConfig holds SSE event settings.
type EventsConfig struct {
	// Throttle is the minimum interval between two feed.updated events.
	Throttle time.Duration `yaml:"throttle"`
}

// Validate validates the events configuration.
func (c *EventsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Throttle, validation.Min(time.Duration(0))),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Content: ContentConfig{
			Root:             "./docs",
			Recursive:        true,
			URLStyle:         loader.URLStyleClean,
			ExcerptSeparator: markdown.DefaultExcerptSeparator,
			Workers:          8,
		},
		SQLite: SQLiteConfig{
			Path: "./journal.db",
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
		Events: EventsConfig{
			Throttle: 2 * time.Second,
		},
	}
}
