// Package config loads blackboard settings from defaults, an optional YAML
// file and BLACKBOARD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"blackboard/internal/board"
)

// FileName is the config file looked up when no explicit path is given.
const FileName = "blackboard.yaml"

type Config struct {
	Canvas CanvasConfig `mapstructure:"canvas" yaml:"canvas"`
	Pen    PenConfig    `mapstructure:"pen" yaml:"pen"`
	Eraser EraserConfig `mapstructure:"eraser" yaml:"eraser"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Export ExportConfig `mapstructure:"export" yaml:"export"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

type CanvasConfig struct {
	Width    int `mapstructure:"width" yaml:"width"`
	Height   int `mapstructure:"height" yaml:"height"`
	GridSize int `mapstructure:"grid_size" yaml:"grid_size"`
}

type PenConfig struct {
	Color string `mapstructure:"color" yaml:"color"`
	Width int    `mapstructure:"width" yaml:"width"`
}

type EraserConfig struct {
	Radius int `mapstructure:"radius" yaml:"radius"`
}

type RenderConfig struct {
	// Bridge is "suppress" (join tiny erase gaps) or "legacy" (always break).
	Bridge string `mapstructure:"bridge" yaml:"bridge"`
}

type ExportConfig struct {
	Margin  int    `mapstructure:"margin" yaml:"margin"`
	Path    string `mapstructure:"path" yaml:"path"`
	MaxSize int    `mapstructure:"max_size" yaml:"max_size"`
}

type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Canvas: CanvasConfig{Width: board.DefaultWidth, Height: board.DefaultHeight, GridSize: board.DefaultGridSize},
		Pen:    PenConfig{Color: board.Purple.String(), Width: board.DefaultStrokeWidth},
		Eraser: EraserConfig{Radius: board.DefaultEraseRadius},
		Render: RenderConfig{Bridge: board.BridgeSuppress.String()},
		Export: ExportConfig{Margin: board.DefaultMargin, Path: "output.png"},
		Log:    LogConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("canvas.width", d.Canvas.Width)
	v.SetDefault("canvas.height", d.Canvas.Height)
	v.SetDefault("canvas.grid_size", d.Canvas.GridSize)
	v.SetDefault("pen.color", d.Pen.Color)
	v.SetDefault("pen.width", d.Pen.Width)
	v.SetDefault("eraser.radius", d.Eraser.Radius)
	v.SetDefault("render.bridge", d.Render.Bridge)
	v.SetDefault("export.margin", d.Export.Margin)
	v.SetDefault("export.path", d.Export.Path)
	v.SetDefault("export.max_size", d.Export.MaxSize)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads the configuration. With an empty path it looks for
// blackboard.yaml in the working directory and then in
// ~/.config/blackboard; a missing file there is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix("BLACKBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "blackboard"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects sizes that cannot build a board, unknown palette names
// and unknown bridge modes.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.GridSize <= 0:
		return fmt.Errorf("canvas.grid_size must be positive, got %d", c.Canvas.GridSize)
	case c.Pen.Width <= 0:
		return fmt.Errorf("pen.width must be positive, got %d", c.Pen.Width)
	case c.Eraser.Radius < 0:
		return fmt.Errorf("eraser.radius must not be negative, got %d", c.Eraser.Radius)
	case c.Export.Margin < 0:
		return fmt.Errorf("export.margin must not be negative, got %d", c.Export.Margin)
	case c.Export.MaxSize < 0:
		return fmt.Errorf("export.max_size must not be negative, got %d", c.Export.MaxSize)
	case c.Export.Path == "":
		return errors.New("export.path must be set")
	}
	if _, err := board.ParseColor(c.Pen.Color); err != nil {
		return fmt.Errorf("pen.color: %w", err)
	}
	if _, err := board.ParseBridgeMode(c.Render.Bridge); err != nil {
		return fmt.Errorf("render.bridge: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses log.level.
func (c Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}

// BoardOptions maps the configuration onto board options. Call Validate first.
func (c Config) BoardOptions() []board.Option {
	col, _ := board.ParseColor(c.Pen.Color)
	bridge, _ := board.ParseBridgeMode(c.Render.Bridge)
	return []board.Option{
		board.WithCanvas(c.Canvas.Width, c.Canvas.Height),
		board.WithGridSize(c.Canvas.GridSize),
		board.WithStrokeWidth(c.Pen.Width),
		board.WithEraseRadius(c.Eraser.Radius),
		board.WithMargin(c.Export.Margin),
		board.WithBridge(bridge),
		board.WithColor(col),
	}
}

// WriteDefault writes the default configuration to path. It refuses to
// overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
