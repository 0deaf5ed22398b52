package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

var strokeColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "start", Width: 7},
	{Title: "points", Width: 7},
	{Title: "bounds", Width: 24},
}

// refreshStrokes rebuilds the stroke table from the board history.
func (m *Model) refreshStrokes() {
	strokes, err := m.board.Strokes()
	if err != nil {
		m.showStrokes = false
		m.report(err, "")
		return
	}
	rows := make([]table.Row, 0, len(strokes))
	for i, s := range strokes {
		r := s.Bounds
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Start),
			fmt.Sprintf("%d", s.Len()),
			fmt.Sprintf("[%d,%d %d,%d]", r.MinX, r.MinY, r.MaxX, r.MaxY),
		})
	}
	m.tbl.SetRows(rows)
	if m.showStrokes {
		m.status = fmt.Sprintf("%d strokes", len(strokes))
	}
}
