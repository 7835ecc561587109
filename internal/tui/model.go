package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/store"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type mode int

const (
	modeList mode = iota
	modeAdding
	modeEditing
)

// snapshotMsg delivers a store change from a subscription.
type snapshotMsg store.Snapshot

// Options tune the interactive view.
type Options struct {
	Theme     string
	CharLimit int
	AltScreen bool
	Logger    logrus.FieldLogger
}

// Model is the Bubble Tea model for the todo screen. It never edits items
// itself: key handlers call store operations and the list is rebuilt from
// the resulting snapshot.
type Model struct {
	store *store.Store
	snap  store.Snapshot
	log   logrus.FieldLogger

	list   list.Model
	input  textinput.Model // add bar
	editor textinput.Model // in-place edit
	keys   keyMap
	st     *styles

	mode   mode
	editID uuid.UUID

	width, height int
}

// New builds the model for s and loads its current state.
func New(s *store.Store, opt Options) Model {
	st := newStyles(opt.Theme)
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{st: &st}, defaultWidth, defaultHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.SetShowHelp(true)
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.Styles.NoItems = st.muted.Padding(0, 2)
	l.SetStatusBarItemName("item", "items")
	// "d", "u", "b" and "f" belong to the todo actions, not paging.
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown")
	l.KeyMap.PrevPage.SetKeys("left", "h", "pgup")
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = keys.shortHelp
	l.AdditionalFullHelpKeys = keys.fullHelp

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Add items to the list..."
	input.CharLimit = opt.CharLimit

	editor := textinput.New()
	editor.Prompt = "> "
	editor.Placeholder = "Edit item"
	editor.CharLimit = opt.CharLimit

	logger := opt.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	m := Model{
		store:  s,
		log:    logger,
		list:   l,
		input:  input,
		editor: editor,
		keys:   keys,
		st:     &st,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.input.SetValue(s.Draft())
	m.apply(s.Snapshot())
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case snapshotMsg:
		if snap := store.Snapshot(msg); snap.Version > m.snap.Version {
			m.apply(snap)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdding:
			return m.updateAdding(msg)
		case modeEditing:
			return m.updateEditing(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		// Empty drafts are ignored by the store; the bar stays open for the next item.
		if id, ok := m.store.SubmitDraft(); ok {
			m.log.WithField("id", id).Debug("tui: item added")
		}
		m.input.SetValue(m.store.Draft())
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.Leave):
		m.mode = modeList
		m.input.Blur()
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetDraft(m.input.Value())
	m.sync()
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) || key.Matches(msg, m.keys.Leave) {
		m.store.CommitEdit(m.editID)
		m.log.WithField("id", m.editID).Debug("tui: edit committed")
		m.mode = modeList
		m.editID = uuid.Nil
		m.editor.Blur()
		m.editor.SetValue("")
		m.sync()
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.store.Rename(m.editID, m.editor.Value())
	m.sync()
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdding
		m.resize()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		// The checkbox is disabled while its item is being edited.
		if it, ok := m.selected(); ok && !it.Editing {
			m.store.ToggleComplete(it.ID)
			m.sync()
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.store.BeginEdit(it.ID)
		m.mode = modeEditing
		m.editID = it.ID
		m.editor.SetValue(it.Text)
		m.editor.CursorEnd()
		m.sync()
		m.resize()
		return m, m.editor.Focus()

	case key.Matches(msg, m.keys.Remove):
		if it, ok := m.selected(); ok {
			m.store.RemoveItem(it.ID)
			m.log.WithField("id", it.ID).Debug("tui: item removed")
			m.sync()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleAll):
		m.store.ToggleAll()
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.NextFilter):
		m.store.SetFilter(m.store.Filter().Next())
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.ShowAll):
		return m.setFilter(model.All)
	case key.Matches(msg, m.keys.ShowActive):
		return m.setFilter(model.Active)
	case key.Matches(msg, m.keys.ShowComplete):
		return m.setFilter(model.Completed)

	case key.Matches(msg, m.keys.Clear):
		m.store.ClearCompleted()
		m.sync()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) setFilter(f model.Filter) (tea.Model, tea.Cmd) {
	m.store.SetFilter(f)
	m.sync()
	return m, nil
}

// sync pulls the latest snapshot after a store operation.
func (m *Model) sync() {
	m.apply(m.store.Snapshot())
}

// apply rebuilds the list from snap, keeping the cursor on the same item when
// it is still visible.
func (m *Model) apply(snap store.Snapshot) {
	prev, hadPrev := m.selected()
	prevIndex := m.list.Index()

	visible := snap.Visible()
	items := make([]list.Item, 0, len(visible))
	next := -1
	for i, it := range visible {
		items = append(items, listItem{item: it})
		if hadPrev && it.ID == prev.ID {
			next = i
		}
	}
	m.list.SetItems(items)
	m.snap = snap

	switch {
	case len(items) == 0:
	case next >= 0:
		m.list.Select(next)
	case prevIndex >= len(items):
		m.list.Select(len(items) - 1)
	default:
		m.list.Select(max(prevIndex, 0))
	}
}

func (m Model) selected() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return li.item, true
}

// chrome is the number of rows around the list: title, add bar (3),
// footer (2) and the frame (2), plus the edit bar when open.
func (m Model) chrome() int {
	n := 1 + 3 + 2 + 2
	if m.mode == modeEditing {
		n += 3
	}
	return n
}

func (m *Model) resize() {
	w := max(m.width-4, 20)
	h := max(m.height-m.chrome(), 3)
	m.list.SetSize(w, h)
	m.input.Width = max(w-8, 10)
	m.editor.Width = max(w-8, 10)
}

// Snapshot returns the state the view currently renders.
func (m Model) Snapshot() store.Snapshot { return m.snap }

func (m Model) View() string {
	st := m.st
	var b strings.Builder

	b.WriteString(st.title.Render("TODOS"))
	b.WriteString("\n")

	// Toggle-all glyph reflects the intent flag, not the item states.
	glyph := st.allOff
	if m.snap.AllSelected {
		glyph = st.allOn
	}
	if len(m.snap.Items) == 0 {
		glyph = st.muted.Render(glyph)
	} else {
		glyph = st.accent.Render(glyph)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, glyph+" ", st.bar.Render(m.input.View())))
	b.WriteString("\n")

	b.WriteString(m.list.View())
	b.WriteString("\n")

	if m.mode == modeEditing {
		b.WriteString(st.bar.Render("Edit item\n" + m.editor.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.footer())
	return st.frame.Render(b.String())
}

func (m Model) footer() string {
	st := m.st
	tabs := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		style := st.tab
		if f == m.snap.Filter {
			style = st.tabActive
		}
		tabs = append(tabs, style.Render(f.String()))
	}
	left := st.pending.Render(store.RemainingLabel(m.snap.Remaining()))
	right := strings.Join(tabs, "  ")
	gap := max(m.width-6-lipgloss.Width(left)-lipgloss.Width(right), 2)
	return left + strings.Repeat(" ", gap) + right + "\n" + st.muted.Render("c clear completed")
}
