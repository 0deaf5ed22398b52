package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"blackboard/internal/board"
	"blackboard/internal/config"
	"blackboard/internal/tui"
)

func newRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "blackboard",
		Short: "Freehand drawing pad for the terminal",
		Long: `Draw with the mouse, erase with the right button and save the last
stroke or the whole board as an image.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPad(configPath)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default ./"+config.FileName+" or ~/.config/blackboard/"+config.FileName+")")

	cmd.AddCommand(
		newReplayCmd(&configPath),
		newColorsCmd(&configPath),
		newInitCmd(),
	)
	return cmd
}

func runPad(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// The pad owns the terminal, so logs only go to a file.
	closeLog, err := setupLogging(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	b := board.New(cfg.BoardOptions()...)
	board.Logger().Info("pad started", "canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height))
	p := tea.NewProgram(tui.New(b, cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running pad: %w", err)
	}
	return nil
}

// setupLogging installs the board logger. With log.file set records go to
// that file; otherwise to fallback, or nowhere when fallback is nil. The
// returned func closes the log file.
func setupLogging(cfg config.Config, fallback io.Writer) (func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch {
	case cfg.Log.File != "":
		f, err := tea.LogToFile(cfg.Log.File, "blackboard")
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		board.SetLogger(slog.New(slog.NewTextHandler(f, opts)))
		return func() {
			board.SetLogger(nil)
			_ = f.Close()
		}, nil
	case fallback != nil:
		board.SetLogger(slog.New(slog.NewTextHandler(fallback, opts)))
		return func() { board.SetLogger(nil) }, nil
	default:
		return func() {}, nil
	}
}
