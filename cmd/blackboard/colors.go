package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"blackboard/internal/board"
	"blackboard/internal/config"
)

func newColorsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the pen palette",
		Long:  `Display the palette colors that pen.color accepts. The configured color is marked.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			active, _ := board.ParseColor(cfg.Pen.Color)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available pen colors:")
			fmt.Fprintln(out)
			for i, c := range board.Palette() {
				mark := " "
				if c == active {
					mark = "*"
				}
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██")
				fmt.Fprintf(out, " %s %d  %s  %-7s %s\n", mark, i+1, swatch, c, c.Hex())
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Use in "+config.FileName+":")
			fmt.Fprintln(out, "  pen:")
			fmt.Fprintln(out, "    color: Blue")
			return nil
		},
	}
}
