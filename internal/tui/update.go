package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"blackboard/internal/board"
	"blackboard/internal/trace"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeSidebar()
	case tea.KeyMsg:
		// A filtering list owns the keyboard.
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.showStrokes {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Color):
		c := board.Color(msg.String()[0] - '1')
		m.report(m.board.SetColor(c), "color: "+c.String())
	case key.Matches(msg, m.keys.Tool):
		if m.tool == toolPen {
			m.tool = toolEraser
		} else {
			m.tool = toolPen
		}
		m.status = "tool: " + m.tool.String()
	case key.Matches(msg, m.keys.Clear):
		m.report(m.board.Clear(), "cleared")
		m.refreshStrokes()
	case key.Matches(msg, m.keys.Toggle):
		on := !m.board.Enabled()
		m.board.SetEnabled(on)
		if on {
			m.status = "board enabled"
		} else {
			m.drawing, m.erasing = false, false
			m.status = "board disabled"
		}
	case key.Matches(msg, m.keys.Bridge):
		next := board.BridgeLegacy
		if m.board.Bridge() == board.BridgeLegacy {
			next = board.BridgeSuppress
		}
		m.report(m.board.SetBridge(next), "bridge: "+next.String())
	case key.Matches(msg, m.keys.SaveLast):
		m.save(board.LastTrace)
	case key.Matches(msg, m.keys.SaveAll):
		m.save(board.AllTraces)
	case key.Matches(msg, m.keys.Scripts):
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			m.resizeSidebar()
		}
	case key.Matches(msg, m.keys.Replay):
		if !m.showSidebar {
			return nil, false
		}
		if it, ok := m.l.SelectedItem().(scriptItem); ok {
			m.replay(it.path)
		}
	case key.Matches(msg, m.keys.Paste):
		m.pasteMode = true
		m.ta.SetValue("")
		m.ta.Focus()
		m.status = "paste mode"
	case key.Matches(msg, m.keys.Strokes):
		m.showStrokes = !m.showStrokes
		if m.showStrokes {
			m.refreshStrokes()
		}
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	default:
		return nil, false
	}
	return nil, true
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.pasteMode = false
		m.ta.Blur()
		m.status = "paste cancelled"
		return m, nil
	case tea.KeyEnter:
		src := strings.TrimSpace(m.ta.Value())
		if src == "" {
			m.status = "paste: empty"
			return m, nil
		}
		pts, err := trace.ParseWKT(src)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.feed(pts, "pasted WKT")
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ox, oy, w, h := m.layout()
	cx, cy := msg.X-ox, msg.Y-oy
	inside := cx >= 0 && cy >= 0 && cx < w && cy < h
	pt := m.cellToCanvas(cx, cy)
	m.hovering = inside
	if inside {
		m.hoverCX, m.hoverCY, m.hoverPt = cx, cy, pt
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if !inside || m.pasteMode || m.showStrokes {
			return
		}
		switch {
		case msg.Button == tea.MouseButtonRight,
			msg.Button == tea.MouseButtonLeft && m.tool == toolEraser:
			m.erasing = true
			m.erase(pt)
		case msg.Button == tea.MouseButtonLeft:
			m.startStroke(pt)
		}
	case tea.MouseActionMotion:
		// Samples past the edge are kept; the board leaves them unindexed.
		if m.drawing {
			m.sample(pt)
		}
		if m.erasing {
			m.erase(pt)
		}
	case tea.MouseActionRelease:
		// The stroke stays open until the next press, so it is still the
		// last trace for the save key.
		if m.drawing && m.showStrokes {
			m.refreshStrokes()
		}
		m.drawing, m.erasing = false, false
	}
}

// startStroke breaks from the previous stroke and records the first sample.
func (m *Model) startStroke(p board.Point) {
	if err := m.board.BeginStroke(); err != nil {
		m.report(err, "")
		return
	}
	m.drawing = true
	m.sample(p)
}

func (m *Model) sample(p board.Point) {
	if err := m.board.AppendSample(p); err != nil {
		m.drawing = false
		m.report(err, "")
	}
}

func (m *Model) erase(p board.Point) {
	err := m.board.EraseAt(p)
	if err != nil {
		m.erasing = false
	}
	m.report(err, "")
}

func (m *Model) save(mode board.ExportMode) {
	path := m.cfg.Export.Path
	err := m.board.Save(mode, path, m.cfg.Export.MaxSize)
	switch {
	case errors.Is(err, board.ErrNothingToExport):
		m.status = "nothing to export"
	case err != nil:
		m.report(err, "")
	default:
		m.status = fmt.Sprintf("saved %s to %s", mode, path)
	}
}

// feed appends samples to the board and reports how many landed.
func (m *Model) feed(pts []board.Point, what string) {
	n, err := trace.Feed(m.board, pts)
	if err != nil {
		m.report(err, "")
		return
	}
	m.status = fmt.Sprintf("%s: %d samples", what, n)
	if m.showStrokes {
		m.refreshStrokes()
	}
}

// report turns a board error into a status line; ok is shown on success
// unless empty.
func (m *Model) report(err error, ok string) {
	switch {
	case errors.Is(err, board.ErrDisabled):
		m.status = "board disabled (d to enable)"
	case err != nil:
		m.status = "error: " + err.Error()
	case ok != "":
		m.status = ok
	}
}

func (m *Model) resizeSidebar() {
	if m.showSidebar {
		_, _, _, h := m.layout()
		m.l.SetSize(sidebarWidth-2, h-2)
	}
}
