package tui

import (
	"errors"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"blackboard/internal/board"
)

var cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))

// renderCanvas draws the board history into a w x h braille block tinted
// with the active pen color. The eraser cursor is overlaid on the hovered
// cell.
func (m Model) renderCanvas(w, h int) string {
	bw, bh := m.board.Size()
	br := newBrailleBuf(w, h, bw, bh)
	if err := m.board.RenderAll(br); err != nil {
		msg := "render error: " + err.Error()
		if errors.Is(err, board.ErrDisabled) {
			msg = "board disabled ─ press d to enable"
		}
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render(msg))
	}

	var c color.Color = m.board.Color()
	if br.col != nil {
		c = br.col
	}
	ink := lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(c)))
	lines := br.toLines()
	for y, line := range lines {
		if m.tool == toolEraser && m.hovering && y == m.hoverCY {
			r := []rune(line)
			cx := clamp(m.hoverCX, 0, len(r)-1)
			lines[y] = ink.Render(string(r[:cx])) + cursorStyle.Render("◯") + ink.Render(string(r[cx+1:]))
			continue
		}
		lines[y] = ink.Render(line)
	}
	return strings.Join(lines, "\n")
}
