package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"blackboard/internal/board"
	"blackboard/internal/config"
	"blackboard/internal/trace"
)

type replayOptions struct {
	output  string
	mode    string
	format  string
	maxSize int
	live    bool
}

func newReplayCmd(configPath *string) *cobra.Command {
	var opts replayOptions
	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Render a trace script to an image",
		Long: `Feed a .csv or .wkt trace script into a fresh board and save the result.

By default the export crop is written: the last stroke (squared) or every
stroke, padded by export.margin. With --live the full canvas is rendered the
way the pad shows it, including gap bridging. Use -o - to write to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("output") {
				opts.output = cfg.Export.Path
			}
			if !cmd.Flags().Changed("max-size") {
				opts.maxSize = cfg.Export.MaxSize
			}
			closeLog, err := setupLogging(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()
			return runReplay(cmd.OutOrStdout(), cfg, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "image path, or - for stdout (default export.path)")
	f.StringVarP(&opts.mode, "mode", "m", board.AllTraces.String(), "what to export: last or all")
	f.StringVar(&opts.format, "format", "png", "image format when writing to stdout")
	f.IntVar(&opts.maxSize, "max-size", 0, "shrink the longest side to this many pixels, 0 keeps full size (default export.max_size)")
	f.BoolVar(&opts.live, "live", false, "render the whole canvas instead of the export crop")
	return cmd
}

func runReplay(out io.Writer, cfg config.Config, script string, opts replayOptions) error {
	mode, err := board.ParseExportMode(opts.mode)
	if err != nil {
		return err
	}
	if opts.output == "-" {
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("refusing to write image data to a terminal; redirect stdout or use -o <file>")
		}
	}

	pts, err := trace.Load(script)
	if err != nil {
		return err
	}
	b := board.New(cfg.BoardOptions()...)
	n, err := trace.Feed(b, pts)
	if err != nil {
		return err
	}
	board.Logger().Info("script replayed", "script", filepath.Base(script), "samples", n)

	var snap *board.Snapshot
	if opts.live {
		snap, err = renderLive(b)
	} else {
		snap, err = b.Export(mode)
	}
	if err != nil {
		return err
	}

	if opts.output == "-" {
		return snap.Encode(out, opts.format, opts.maxSize)
	}
	if err := snap.Save(opts.output, opts.maxSize); err != nil {
		return err
	}
	board.Logger().Info("snapshot saved", "path", opts.output, "origin", snap.Origin)
	fmt.Fprintf(out, "Wrote %s (%dx%d, %d samples)\n", opts.output, snap.Image.Bounds().Dx(), snap.Image.Bounds().Dy(), n)
	return nil
}

// renderLive draws the whole canvas in the pen color on white.
func renderLive(b *board.Board) (*board.Snapshot, error) {
	w, h := b.Size()
	surf := board.NewImageSurface(w, h, color.White)
	defer surf.Close()
	if err := b.RenderAll(surf); err != nil {
		return nil, err
	}
	return &board.Snapshot{Image: surf.Image()}, nil
}
