package config

import (
	"bytes"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	want := Config{
		Logger: LoggerConfig{Level: "info", Format: "text", MaxSize: 10, MaxBackups: 3, MaxAge: 7},
		Field:  FieldConfig{Total: 900},
		Render: RenderConfig{
			Width: 640, Height: 480, PixelRatio: 1, Frames: 120, Output: "heart.png",
			Backend: "raster", Background: "#0b0b12", CaptionColor: "#f8d7da",
		},
		Window: WindowConfig{Width: 800, Height: 600, Title: "heartfield", TPS: 60},
		Term:   TermConfig{FPS: 30, LogFile: "heartfield.log"},
	}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("NewDefaultConfig() mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults fail validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.Logger.Level = "loud" }, "logger.level"},
		{"bad format", func(c *Config) { c.Logger.Format = "xml" }, "logger.format"},
		{"negative total", func(c *Config) { c.Field.Total = -1 }, "field.total"},
		{"zero render width", func(c *Config) { c.Render.Width = 0 }, "render size"},
		{"zero ratio", func(c *Config) { c.Render.PixelRatio = 0 }, "render.pixel_ratio"},
		{"no frames", func(c *Config) { c.Render.Frames = 0 }, "render.frames"},
		{"bad backend", func(c *Config) { c.Render.Backend = "vulkan" }, "render.backend"},
		{"bad background", func(c *Config) { c.Render.Background = "#12345" }, "render.background"},
		{"bad caption color", func(c *Config) { c.Render.CaptionColor = "#zzz" }, "render.caption_color"},
		{"zero window", func(c *Config) { c.Window.Height = 0 }, "window size"},
		{"zero tps", func(c *Config) { c.Window.TPS = 0 }, "window.tps"},
		{"zero fps", func(c *Config) { c.Term.FPS = 0 }, "term.fps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Window.TPS = 0
	cfg.Term.FPS = 0
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "window.tps") || !strings.Contains(err.Error(), "term.fps") {
		t.Errorf("Validate() = %v, want both problems", err)
	}
}

func TestNewConfigFromViperYAML(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	yaml := `
logger:
  level: debug
  format: json
field:
  total: 300
  seed: 7
render:
  backend: gg
  caption: hello
`
	if err := v.ReadConfig(bytes.NewBufferString(yaml)); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfigFromViper(v)
	if err != nil {
		t.Fatalf("NewConfigFromViper() = %v", err)
	}
	if cfg.Logger.Level != "debug" || cfg.Logger.Format != "json" {
		t.Errorf("logger = %+v", cfg.Logger)
	}
	if cfg.Field != (FieldConfig{Total: 300, Seed: 7}) {
		t.Errorf("field = %+v", cfg.Field)
	}
	if cfg.Render.Backend != "gg" || cfg.Render.Caption != "hello" || cfg.Render.Width != 640 {
		t.Errorf("render = %+v", cfg.Render)
	}
}

func TestNewConfigFromViperEnv(t *testing.T) {
	t.Setenv("HEARTFIELD_FIELD_TOTAL", "42")
	t.Setenv("HEARTFIELD_TERM_FPS", "12")

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := NewConfigFromViper(v)
	if err != nil {
		t.Fatalf("NewConfigFromViper() = %v", err)
	}
	if cfg.Field.Total != 42 || cfg.Term.FPS != 12 {
		t.Errorf("env overrides not applied: field=%+v term=%+v", cfg.Field, cfg.Term)
	}
}

func TestNewConfigFromViperInvalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("render.backend", "canvas")
	if _, err := NewConfigFromViper(v); err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("NewConfigFromViper() = %v, want invalid configuration", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"", slog.LevelInfo, true},
		{"chatty", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}, false},
		{"00ff00", color.NRGBA{G: 255, A: 255}, false},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#f000", color.NRGBA{R: 255}, false},
		{"#12345", color.NRGBA{}, true},
		{"#gg0000", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) = %v", tt.in, err)
			continue
		}
		if c := color.NRGBAModel.Convert(got).(color.NRGBA); c != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, c, tt.want)
		}
	}
}
