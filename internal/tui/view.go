package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"blackboard/internal/board"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	ox, _, w, h := m.layout()
	contentWidth := max(10, m.width)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(" blackboard ─ freehand drawing pad "),
		m.renderSwatch(),
		dimStyle.Render(fmt.Sprintf(" %s  bridge:%s", m.tool, m.board.Bridge())),
	)
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var canvas string
	switch {
	case m.showStrokes:
		tw := min(w, 56)
		m.tbl.SetWidth(tw - 4)
		m.tbl.SetHeight(min(h-2, 20))
		box := boxStyle.Width(tw).Render(m.tbl.View())
		canvas = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(w)
		m.ta.SetHeight(min(h, 12))
		canvas = m.ta.View()
	default:
		canvas = m.renderCanvas(w, h)
	}
	canvas = lipgloss.NewStyle().Width(w).Height(h).Render(canvas)

	body := canvas
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(ox - 1).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", canvas)
	}

	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%d y=%d  n=%d ", m.hoverPt.X, m.hoverPt.Y, m.board.Len()))
	}
	spacer := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(coords))
	statusLine := lipgloss.JoinHorizontal(lipgloss.Bottom, status, lipgloss.NewStyle().Width(spacer).Render(""), coords)
	helpLine := ""
	if m.helpVisible {
		helpLine = " " + m.help.View(m.keys)
	}
	footer := lipgloss.JoinVertical(lipgloss.Left, statusLine, helpLine)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderSwatch shows the palette with the active color highlighted.
func (m Model) renderSwatch() string {
	active := m.board.Color()
	out := " "
	for i, c := range board.Palette() {
		cell := fmt.Sprintf("%d", i+1)
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		if c == active {
			st = st.Bold(true).Reverse(true)
		}
		out += st.Render(cell)
	}
	return out
}
