// Package config loads heartfield settings from defaults, an optional YAML
// file and HEARTFIELD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. HEARTFIELD_FIELD_TOTAL.
const EnvPrefix = "HEARTFIELD"

// Config holds the whole CLI configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Field  FieldConfig  `mapstructure:"field" yaml:"field"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Window WindowConfig `mapstructure:"window" yaml:"window"`
	Term   TermConfig   `mapstructure:"term" yaml:"term"`
}

// LoggerConfig selects the slog handler and the optional rotating log file.
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"` // "text" or "json"
	AddSource  bool   `mapstructure:"add_source" yaml:"add_source"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// FieldConfig configures the particle field shared by every host.
type FieldConfig struct {
	Total int    `mapstructure:"total" yaml:"total"`
	Seed  uint64 `mapstructure:"seed" yaml:"seed"` // 0 seeds from the clock
}

// RenderConfig configures offscreen PNG rendering.
type RenderConfig struct {
	Width        int     `mapstructure:"width" yaml:"width"`
	Height       int     `mapstructure:"height" yaml:"height"`
	PixelRatio   float64 `mapstructure:"pixel_ratio" yaml:"pixel_ratio"`
	Frames       int     `mapstructure:"frames" yaml:"frames"`
	Output       string  `mapstructure:"output" yaml:"output"`
	Backend      string  `mapstructure:"backend" yaml:"backend"` // "raster" or "gg"
	Background   string  `mapstructure:"background" yaml:"background"`
	Caption      string  `mapstructure:"caption" yaml:"caption"`
	CaptionColor string  `mapstructure:"caption_color" yaml:"caption_color"`
	Sweep        bool    `mapstructure:"sweep" yaml:"sweep"` // drag a pointer across the heart
}

// WindowConfig configures the desktop window host.
type WindowConfig struct {
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	Title  string `mapstructure:"title" yaml:"title"`
	TPS    int    `mapstructure:"tps" yaml:"tps"`
}

// TermConfig configures the terminal host. The terminal owns stdout, so
// logs go to LogFile.
type TermConfig struct {
	FPS     int    `mapstructure:"fps" yaml:"fps"`
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("field.total", 900)
	v.SetDefault("field.seed", 0)

	v.SetDefault("render.width", 640)
	v.SetDefault("render.height", 480)
	v.SetDefault("render.pixel_ratio", 1.0)
	v.SetDefault("render.frames", 120)
	v.SetDefault("render.output", "heart.png")
	v.SetDefault("render.backend", "raster")
	v.SetDefault("render.background", "#0b0b12")
	v.SetDefault("render.caption", "")
	v.SetDefault("render.caption_color", "#f8d7da")
	v.SetDefault("render.sweep", false)

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "heartfield")
	v.SetDefault("window.tps", 60)

	v.SetDefault("term.fps", 30)
	v.SetDefault("term.log_file", "heartfield.log")
}

// NewDefaultConfig returns the configuration with only defaults applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: unmarshal defaults: %v", err))
	}
	return &cfg
}

// NewConfigFromViper unmarshals and validates the settings held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks every section and joins the problems found.
func (c *Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.Logger.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Logger.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logger.format must be text or json, got %q", c.Logger.Format))
	}
	if c.Field.Total < 0 {
		errs = append(errs, fmt.Errorf("field.total must not be negative, got %d", c.Field.Total))
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height))
	}
	if !(c.Render.PixelRatio > 0) {
		errs = append(errs, fmt.Errorf("render.pixel_ratio must be positive, got %v", c.Render.PixelRatio))
	}
	if c.Render.Frames < 1 {
		errs = append(errs, fmt.Errorf("render.frames must be at least 1, got %d", c.Render.Frames))
	}
	switch c.Render.Backend {
	case "raster", "gg":
	default:
		errs = append(errs, fmt.Errorf("render.backend must be raster or gg, got %q", c.Render.Backend))
	}
	if _, err := ParseColor(c.Render.Background); err != nil {
		errs = append(errs, fmt.Errorf("render.background: %w", err))
	}
	if _, err := ParseColor(c.Render.CaptionColor); err != nil {
		errs = append(errs, fmt.Errorf("render.caption_color: %w", err))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS))
	}
	if c.Term.FPS <= 0 {
		errs = append(errs, fmt.Errorf("term.fps must be positive, got %d", c.Term.FPS))
	}
	return errors.Join(errs...)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger.level: %w", err)
	}
	return l, nil
}

// ParseColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA". The leading
// '#' is optional.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return nil, fmt.Errorf("color %q: want 3, 4, 6 or 8 hex digits", s)
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return nil, fmt.Errorf("color %q: invalid hex digit %q", s, c)
		}
	}
	return gg.Hex(hex).Color(), nil
}
