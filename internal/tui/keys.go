package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Color    key.Binding
	Tool     key.Binding
	Clear    key.Binding
	Toggle   key.Binding
	Bridge   key.Binding
	SaveLast key.Binding
	SaveAll  key.Binding
	Scripts  key.Binding
	Replay   key.Binding
	Paste    key.Binding
	Strokes  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Color: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "color"),
		),
		Tool: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "pen/eraser"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "enable/disable"),
		),
		Bridge: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bridge mode"),
		),
		SaveLast: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save last"),
		),
		SaveAll: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "save all"),
		),
		Scripts: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scripts"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Paste: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "paste wkt"),
		),
		Strokes: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "strokes"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Color, k.Tool, k.Clear, k.SaveLast, k.SaveAll, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Color, k.Tool, k.Clear, k.Toggle, k.Bridge},
		{k.SaveLast, k.SaveAll, k.Strokes},
		{k.Scripts, k.Replay, k.Paste},
		{k.Help, k.Quit},
	}
}
