package internal

import (
	"log/slog"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/jera/internal/builder"
)

// Config represents the application configuration.
type Config struct {
	App   ApplicationConfig `yaml:"app"`
	Build BuildConfig       `yaml:"build"`
	Watch WatchConfig       `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Build.Validate(); err != nil {
		return err
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// BuildConfig controls how pages are generated.
type BuildConfig struct {
	Recursive  bool   `yaml:"recursive"`
	Overwrite  bool   `yaml:"overwrite"`
	OutputName string `yaml:"output_name"`
}

// outputNameRe rejects separators so the page always lands inside the
// directory it describes.
var outputNameRe = regexp.MustCompile(`^[^/\\]+$`)

// Validate validates the build configuration.
func (c *BuildConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OutputName,
			validation.Required,
			validation.Match(outputNameRe).Error("must not contain path separators"),
		),
	)
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Debounce returns the rebuild debounce as a duration.
func (c *WatchConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DebounceMS, validation.Required, validation.Min(50), validation.Max(60000)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Build: BuildConfig{
			Recursive:  true,
			Overwrite:  true,
			OutputName: builder.DefaultOutputName,
		},
		Watch: WatchConfig{
			DebounceMS: 500,
		},
	}
}
