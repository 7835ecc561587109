package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todos/internal/model"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	item model.Item
}

func (i listItem) FilterValue() string { return i.item.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	st *styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	it, ok := li.(listItem)
	if !ok {
		return
	}
	st := d.st

	box := st.muted.Render(st.boxUnchecked)
	text := it.item.Text
	switch {
	case it.item.Editing:
		box = st.accent.Render(st.editing)
		text = st.accent.Render(text)
	case it.item.Complete:
		box = st.success.Render(st.boxChecked)
		text = st.done.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = st.selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+box+" "+text)
}
