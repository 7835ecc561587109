package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/store"
)

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		mAny, _ := m.Update(msg)
		var ok bool
		m, ok = mAny.(Model)
		if !ok {
			t.Fatalf("Update returned %T", mAny)
		}
	}
	return m
}

func visibleTexts(m Model) []string {
	var out []string
	for _, li := range m.list.Items() {
		out = append(out, li.(listItem).item.Text)
	}
	return out
}

func newTestModel(t *testing.T, texts ...string) (Model, *store.Store) {
	t.Helper()
	s := store.New()
	for _, txt := range texts {
		if _, ok := s.AddItem(txt); !ok {
			t.Fatalf("add %q", txt)
		}
	}
	return New(s, Options{Theme: "mono", CharLimit: 200}), s
}

func TestAddBar_SubmitsDraftAndStaysOpen(t *testing.T) {
	m, s := newTestModel(t)

	m = press(t, m, runes("a"))
	if m.mode != modeAdding {
		t.Fatalf("expected add mode, got %v", m.mode)
	}
	m = press(t, m, runes("Buy milk"))
	if got := s.Draft(); got != "Buy milk" {
		t.Fatalf("draft: got %q", got)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := visibleTexts(m); len(got) != 1 || got[0] != "Buy milk" {
		t.Fatalf("items: got %v", got)
	}
	if m.input.Value() != "" || s.Draft() != "" {
		t.Fatalf("input not cleared: %q / %q", m.input.Value(), s.Draft())
	}
	if m.mode != modeAdding {
		t.Fatalf("add bar should stay open")
	}

	// Empty submit is silently ignored.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if s.Len() != 1 {
		t.Fatalf("empty draft added an item")
	}

	// "q" is text while typing, esc leaves.
	m = press(t, m, runes("q"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList {
		t.Fatalf("esc should leave add mode")
	}
	if s.Draft() != "q" {
		t.Fatalf("draft: got %q", s.Draft())
	}
}

func TestToggleAndRemoveSelected(t *testing.T) {
	m, s := newTestModel(t, "a", "b", "c")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, space)
	if s.RemainingCount() != 2 {
		t.Fatalf("remaining: got %d", s.RemainingCount())
	}
	if it, _ := m.selected(); it.Text != "b" || !it.Complete {
		t.Fatalf("selected: %+v", it)
	}

	m = press(t, m, runes("d"))
	if got := strings.Join(visibleTexts(m), ","); got != "a,c" {
		t.Fatalf("after remove: got %s", got)
	}
	if it, _ := m.selected(); it.Text != "c" {
		t.Fatalf("cursor should move to the next item, got %q", it.Text)
	}
}

func TestFilterTabs(t *testing.T) {
	m, s := newTestModel(t, "Buy milk", "Walk dog")
	m = press(t, m, space)

	m = press(t, m, runes("3"))
	if s.Filter() != model.Completed {
		t.Fatalf("filter: got %v", s.Filter())
	}
	if got := visibleTexts(m); len(got) != 1 || got[0] != "Buy milk" {
		t.Fatalf("completed view: got %v", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if s.Filter() != model.All {
		t.Fatalf("tab from Completed should wrap to All, got %v", s.Filter())
	}
	m = press(t, m, runes("2"))
	if got := visibleTexts(m); len(got) != 1 || got[0] != "Walk dog" {
		t.Fatalf("active view: got %v", got)
	}
	if !strings.Contains(m.View(), "1 item left") {
		t.Fatalf("footer missing remaining label:\n%s", m.View())
	}
}

func TestClearCompletedResetsFilter(t *testing.T) {
	m, s := newTestModel(t, "a", "b")
	m = press(t, m, runes("A"))
	if !s.AllSelected() {
		t.Fatalf("toggle all should set the intent flag")
	}
	m = press(t, m, runes("3"), runes("c"))
	if s.Len() != 0 || s.Filter() != model.All || s.AllSelected() {
		t.Fatalf("after clear: len=%d filter=%v all=%v", s.Len(), s.Filter(), s.AllSelected())
	}
	if len(m.list.Items()) != 0 {
		t.Fatalf("list not refreshed")
	}
}

func TestEditInPlace(t *testing.T) {
	m, s := newTestModel(t, "Buy milk")

	m = press(t, m, runes("e"))
	if m.mode != modeEditing {
		t.Fatalf("expected edit mode")
	}
	it, _ := m.selected()
	if !it.Editing {
		t.Fatalf("store item should be editing")
	}

	// Checkbox is disabled while editing: space is typed into the editor.
	m = press(t, m, space, runes("now"))
	got, _ := s.Item(it.ID)
	if got.Text != "Buy milk now" || got.Complete {
		t.Fatalf("live rename: %+v", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	got, _ = s.Item(it.ID)
	if got.Editing || m.mode != modeList {
		t.Fatalf("commit did not leave edit mode: %+v", got)
	}
}

func TestEditAllowsEmptyText(t *testing.T) {
	m, s := newTestModel(t, "ab")
	m = press(t, m, runes("e"),
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	snap := s.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].Text != "" {
		t.Fatalf("expected one empty item, got %+v", snap.Items)
	}
	if m.mode != modeList {
		t.Fatalf("esc should commit the edit")
	}
}

func TestSnapshotMsg_DropsStale(t *testing.T) {
	m, s := newTestModel(t, "a")
	stale := s.Snapshot()
	s.AddItem("b")
	fresh := s.Snapshot()

	m = press(t, m, snapshotMsg(fresh))
	if len(m.list.Items()) != 2 {
		t.Fatalf("fresh snapshot not applied")
	}
	m = press(t, m, snapshotMsg(stale))
	if len(m.list.Items()) != 2 {
		t.Fatalf("stale snapshot applied")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)
	if _, cmd := m.Update(runes("q")); cmd == nil {
		t.Fatalf("q should quit in list mode")
	}
	m = press(t, m, runes("a"))
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("ctrl+c should quit while adding")
	}
}

func TestView_ToggleAllGlyphFollowsIntent(t *testing.T) {
	m, _ := newTestModel(t, "a")
	if !strings.Contains(m.View(), "( )") {
		t.Fatalf("expected empty toggle glyph:\n%s", m.View())
	}
	m = press(t, m, runes("A"))
	if !strings.Contains(m.View(), "(*)") {
		t.Fatalf("expected filled toggle glyph:\n%s", m.View())
	}
	// Individual toggle does not recompute the glyph.
	m = press(t, m, space)
	if !strings.Contains(m.View(), "(*)") {
		t.Fatalf("glyph should keep the bulk intent:\n%s", m.View())
	}
}
