package config

import (
	"fmt"
	"time"
)

// CurrentVersion is the only schema version this build understands.
const CurrentVersion = 1

// Config is the user configuration file.
type Config struct {
	Version  int            `yaml:"version"`
	Messages MessageConfig  `yaml:"messages"`
	Progress ProgressConfig `yaml:"progress"`
}

// MessageConfig holds defaults for message commands.
type MessageConfig struct {
	Timestamp   bool `yaml:"timestamp"`    // Default for -t/--timestamp
	NoColor     bool `yaml:"no_color"`     // Default for --no-color
	IndentWidth int  `yaml:"indent_width"` // Spaces per indent level (1-8)
}

// ProgressConfig holds progress bar settings.
type ProgressConfig struct {
	TickMS        int `yaml:"tick_ms"`        // Redraw interval, clamped to 60-1000
	FallbackWidth int `yaml:"fallback_width"` // Used when the terminal size is unknown
	MaxLabels     int `yaml:"max_labels"`     // In-flight labels shown before "+K more"
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Messages: MessageConfig{
			IndentWidth: 4,
		},
		Progress: ProgressConfig{
			TickMS:        100,
			FallbackWidth: 80,
			MaxLabels:     3,
		},
	}
}

// normalize fills zero values with defaults, clamps the tick and rejects
// values that cannot be used.
func (c *Config) normalize() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}

	def := Default()
	if c.Messages.IndentWidth == 0 {
		c.Messages.IndentWidth = def.Messages.IndentWidth
	}
	if c.Messages.IndentWidth < 1 || c.Messages.IndentWidth > 8 {
		return fmt.Errorf("messages.indent_width must be between 1 and 8, got %d", c.Messages.IndentWidth)
	}

	if c.Progress.TickMS == 0 {
		c.Progress.TickMS = def.Progress.TickMS
	}
	c.Progress.TickMS = min(max(c.Progress.TickMS, 60), 1000)

	if c.Progress.FallbackWidth <= 0 {
		c.Progress.FallbackWidth = def.Progress.FallbackWidth
	}
	if c.Progress.MaxLabels < 0 {
		return fmt.Errorf("progress.max_labels cannot be negative, got %d", c.Progress.MaxLabels)
	}
	return nil
}

// Tick returns the progress redraw interval.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.Progress.TickMS) * time.Millisecond
}
