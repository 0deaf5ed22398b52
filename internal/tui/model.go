// Package tui is the interactive drawing pad: a bubbletea program that feeds
// mouse samples into a board.Board and draws its history as braille.
package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"blackboard/internal/board"
	"blackboard/internal/config"
)

type tool int

const (
	toolPen tool = iota
	toolEraser
)

func (t tool) String() string {
	if t == toolEraser {
		return "eraser"
	}
	return "pen"
}

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	width  int
	height int

	board *board.Board
	cfg   config.Config

	keys        keyMap
	help        help.Model
	helpVisible bool
	status      string

	tool tool
	// drawing and erasing track an active drag; motion events only act
	// while the button that started it is held.
	drawing bool
	erasing bool

	// Script explorer
	showSidebar bool
	cwd         string
	l           list.Model

	// WKT paste box
	pasteMode bool
	ta        textarea.Model

	// Stroke table
	showStrokes bool
	tbl         table.Model

	// Hover state, in canvas pixels
	hovering bool
	hoverCX  int
	hoverCY  int
	hoverPt  board.Point
}

// New builds a pad around b. cfg supplies the export path and size used by
// the save keys.
func New(b *board.Board, cfg config.Config) Model {
	m := Model{
		board:       b,
		cfg:         cfg,
		keys:        defaultKeys(),
		help:        help.New(),
		helpVisible: true,
		status:      "blackboard ready",
	}
	m.cwd, _ = os.Getwd()

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Scripts"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT (POINT, LINESTRING, MULTILINESTRING). Enter draws it; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	m.tbl = table.New(
		table.WithColumns(strokeColumns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// layout returns the canvas origin and size in terminal cells. Update and
// View both go through it so mouse hits line up with what is drawn.
func (m Model) layout() (x, y, w, h int) {
	h = max(4, m.height-headerHeight-footerHeight)
	w = max(10, m.width)
	if m.showSidebar {
		x = sidebarWidth + 1
		w = max(10, w-x)
	}
	return x, headerHeight, w, h
}

// cellToCanvas maps a terminal cell relative to the canvas origin onto the
// center of the board pixels it covers. Cells outside the canvas map
// outside the board.
func (m Model) cellToCanvas(cx, cy int) board.Point {
	_, _, w, h := m.layout()
	bw, bh := m.board.Size()
	return board.Pt(floorDiv((2*cx+1)*bw, 2*w), floorDiv((2*cy+1)*bh, 2*h))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
