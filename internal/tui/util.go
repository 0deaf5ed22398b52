package tui

import (
	"fmt"
	"image/color"

	"golang.org/x/exp/constraints"
)

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// hexOf formats any color as #RRGGBB for lipgloss.
func hexOf(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}
