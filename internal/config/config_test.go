package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"blackboard/internal/board"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	content := `canvas:
  width: 800
  height: 600
pen:
  color: green
render:
  bridge: legacy
export:
  path: snap.bmp
  max_size: 256
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 800, cfg.Canvas.Width)
	require.Equal(t, 600, cfg.Canvas.Height)
	require.Equal(t, board.DefaultGridSize, cfg.Canvas.GridSize, "unset keys keep defaults")
	require.Equal(t, "green", cfg.Pen.Color)
	require.Equal(t, "legacy", cfg.Render.Bridge)
	require.Equal(t, "snap.bmp", cfg.Export.Path)
	require.Equal(t, 256, cfg.Export.MaxSize)
}

func TestLoad_FindsFileInWorkingDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("eraser:\n  radius: 30\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Eraser.Radius)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("BLACKBOARD_PEN_COLOR", "Red")
	t.Setenv("BLACKBOARD_EXPORT_MARGIN", "5")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "Red", cfg.Pen.Color)
	require.Equal(t, 5, cfg.Export.Margin)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "reading config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("pen:\n  color: Magenta\n"), 0o644))
	_, err = Load(bad)
	require.ErrorIs(t, err, board.ErrUnknownColor)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, "canvas size"},
		{"zero grid", func(c *Config) { c.Canvas.GridSize = 0 }, "grid_size"},
		{"zero pen", func(c *Config) { c.Pen.Width = 0 }, "pen.width"},
		{"negative radius", func(c *Config) { c.Eraser.Radius = -1 }, "eraser.radius"},
		{"negative margin", func(c *Config) { c.Export.Margin = -1 }, "export.margin"},
		{"negative max size", func(c *Config) { c.Export.MaxSize = -1 }, "export.max_size"},
		{"no path", func(c *Config) { c.Export.Path = "" }, "export.path"},
		{"bad color", func(c *Config) { c.Pen.Color = "teal" }, "pen.color"},
		{"bad bridge", func(c *Config) { c.Render.Bridge = "smooth" }, "render.bridge"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			require.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
	require.NoError(t, Defaults().Validate())
}

func TestLogLevel(t *testing.T) {
	cfg := Defaults()
	cfg.Log.Level = "DEBUG"
	l, err := cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, l)
}

func TestBoardOptions(t *testing.T) {
	cfg := Defaults()
	cfg.Canvas.Width, cfg.Canvas.Height = 320, 240
	cfg.Pen.Color = "yellow"
	cfg.Render.Bridge = "legacy"

	b := board.New(cfg.BoardOptions()...)
	w, h := b.Size()
	require.Equal(t, 320, w)
	require.Equal(t, 240, h)
	require.Equal(t, board.Yellow, b.Color())
	require.Equal(t, board.BridgeLegacy, b.Bridge())
}

func TestWriteDefault(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", FileName)

	require.NoError(t, WriteDefault(path))
	require.ErrorContains(t, WriteDefault(path), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "grid_size: 20")
	require.Contains(t, string(data), "bridge: suppress")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}
