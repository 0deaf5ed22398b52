package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackboard/internal/board"
	"blackboard/internal/config"
)

// run executes the CLI inside a scratch working directory and returns
// stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func workdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestColorsCmd(t *testing.T) {
	dir := workdir(t)
	writeFile(t, dir, config.FileName, "pen:\n  color: green\n")

	out, _, err := run(t, "colors")
	require.NoError(t, err)
	assert.Contains(t, out, "Purple")
	assert.Contains(t, out, "#FFC0CB")
	assert.Contains(t, out, "* 3")
	assert.NotContains(t, out, "* 1")
}

func TestInitCmd(t *testing.T) {
	dir := workdir(t)

	out, _, err := run(t, "init")
	require.NoError(t, err)
	assert.Equal(t, "Created "+config.FileName+"\n", out)
	assert.FileExists(t, filepath.Join(dir, config.FileName))

	_, _, err = run(t, "init")
	require.ErrorContains(t, err, "already exists")

	custom := filepath.Join(dir, "conf", "pad.yaml")
	_, _, err = run(t, "init", custom)
	require.NoError(t, err)
	assert.FileExists(t, custom)
}

func TestReplayCmd_Export(t *testing.T) {
	dir := workdir(t)
	script := writeFile(t, dir, "l.wkt", "LINESTRING (100 100, 200 100, 200 200)\n")
	outPath := filepath.Join(dir, "l.png")

	out, errOut, err := run(t, "replay", script, "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+outPath)
	assert.Contains(t, errOut, "script replayed")

	img, err := imaging.Open(outPath)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, b.Dx(), b.Dy(), "a single stroke exports square")
	assert.Greater(t, b.Dx(), 100)
}

func TestReplayCmd_DefaultOutputFromConfig(t *testing.T) {
	dir := workdir(t)
	writeFile(t, dir, config.FileName, "export:\n  path: from-config.png\n  max_size: 32\n")
	script := writeFile(t, dir, "s.csv", "x,y\n10,10\n90,60\n")

	_, _, err := run(t, "replay", script)
	require.NoError(t, err)

	img, err := imaging.Open(filepath.Join(dir, "from-config.png"))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 32)
	assert.LessOrEqual(t, img.Bounds().Dy(), 32)
}

func TestReplayCmd_Live(t *testing.T) {
	dir := workdir(t)
	cfgPath := writeFile(t, dir, "small.yaml", "canvas:\n  width: 200\n  height: 100\n")
	script := writeFile(t, dir, "s.wkt", "LINESTRING (10 10, 190 90)\n")
	outPath := filepath.Join(dir, "live.png")

	_, _, err := run(t, "replay", "-c", cfgPath, "--live", "-o", outPath, script)
	require.NoError(t, err)

	img, err := imaging.Open(outPath)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestReplayCmd_Stdout(t *testing.T) {
	dir := workdir(t)
	script := writeFile(t, dir, "s.wkt", "LINESTRING (10 10, 50 50)\n")

	out, _, err := run(t, "replay", script, "-o", "-", "--mode", "last")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
	assert.NoFileExists(t, filepath.Join(dir, "output.png"))
}

func TestReplayCmd_Errors(t *testing.T) {
	dir := workdir(t)
	point := writeFile(t, dir, "p.wkt", "POINT (10 10)\n")
	line := writeFile(t, dir, "l.wkt", "LINESTRING (10 10, 50 50)\n")
	txt := writeFile(t, dir, "notes.txt", "hello")

	_, _, err := run(t, "replay", point)
	require.ErrorIs(t, err, board.ErrNothingToExport)

	_, _, err = run(t, "replay", line, "--mode", "sideways")
	require.ErrorContains(t, err, "unknown export mode")

	_, _, err = run(t, "replay", txt)
	require.ErrorContains(t, err, "unsupported script")

	_, _, err = run(t, "replay")
	require.Error(t, err)
}

func TestSetupLogging_File(t *testing.T) {
	dir := workdir(t)
	cfg := config.Defaults()
	cfg.Log.File = filepath.Join(dir, "pad.log")
	cfg.Log.Level = "debug"

	closeLog, err := setupLogging(cfg, nil)
	require.NoError(t, err)
	board.Logger().Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=DEBUG msg=hello k=1")
	assert.False(t, board.Logger().Enabled(t.Context(), 0), "closing restores the silent logger")
}
