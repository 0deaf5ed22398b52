package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"blackboard/internal/trace"
)

type scriptItem struct {
	title, desc string
	path        string
}

func (s scriptItem) Title() string       { return s.title }
func (s scriptItem) Description() string { return s.desc }
func (s scriptItem) FilterValue() string { return s.title }

// refreshDir lists the trace scripts in the working directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() || !trace.Supported(e.Name()) {
			continue
		}
		items = append(items, scriptItem{
			title: e.Name(),
			desc:  strings.ToLower(filepath.Ext(e.Name())),
			path:  filepath.Join(m.cwd, e.Name()),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(scriptItem).title < items[j].(scriptItem).title })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = fmt.Sprintf("no %s scripts in current directory", strings.Join(trace.Extensions, "/"))
	}
}

// replay loads a script and feeds it into the board.
func (m *Model) replay(path string) {
	pts, err := trace.Load(path)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.feed(pts, "replayed "+filepath.Base(path))
}
