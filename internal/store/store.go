// Package store holds the authoritative state of a single todo list.
//
// A Store owns the ordered items, the active filter, the toggle-all intent
// flag and the pending input draft. Every operation either applies its effect
// or silently does nothing; there are no error returns. Presentation layers
// read state through Snapshot or VisibleItems and learn about changes through
// Subscribe, never by touching items directly.
package store

import (
	"io"
	"iter"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/todos/internal/model"
)

// Store is safe for use from multiple goroutines; one mutex guards every
// operation. Subscribers are called after the lock is released.
type Store struct {
	mu          sync.Mutex
	items       []model.Item
	filter      model.Filter
	allSelected bool
	draft       string
	issued      map[uuid.UUID]struct{}
	version     uint64

	subs    []subscription
	nextSub int

	log   logrus.FieldLogger
	newID func() uuid.UUID
}

type subscription struct {
	id int
	fn func(Snapshot)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes mutation logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDSource replaces uuid.New as the id generator.
func WithIDSource(fn func() uuid.UUID) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New returns an empty store with the All filter selected.
func New(opts ...Option) *Store {
	s := &Store{
		filter: model.All,
		issued: make(map[uuid.UUID]struct{}),
		log:    discardLogger(),
		newID:  uuid.New,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// -------------- mutations ----------------

// AddItem appends a new incomplete item and clears the draft.
// Empty text is rejected; no trimming is applied.
func (s *Store) AddItem(text string) (uuid.UUID, bool) {
	var id uuid.UUID
	s.mutate("add", func() bool {
		id = s.addLocked(text)
		return id != uuid.Nil
	})
	return id, id != uuid.Nil
}

// SubmitDraft adds the current draft as a new item. The draft is read and
// cleared under the same lock as the append.
func (s *Store) SubmitDraft() (uuid.UUID, bool) {
	var id uuid.UUID
	s.mutate("add", func() bool {
		id = s.addLocked(s.draft)
		return id != uuid.Nil
	})
	return id, id != uuid.Nil
}

func (s *Store) addLocked(text string) uuid.UUID {
	if text == "" {
		return uuid.Nil
	}
	id := s.freshIDLocked()
	s.items = append(s.items, model.Item{ID: id, Text: text})
	s.draft = ""
	return id
}

// SetDraft replaces the pending input buffer.
func (s *Store) SetDraft(text string) {
	s.mutate("draft", func() bool {
		if s.draft == text {
			return false
		}
		s.draft = text
		return true
	})
}

// RemoveItem deletes the item with id, keeping the order of the rest.
func (s *Store) RemoveItem(id uuid.UUID) {
	s.mutate("remove", func() bool {
		if id == uuid.Nil {
			return false
		}
		i := s.indexLocked(id)
		if i < 0 {
			return false
		}
		s.items = slices.Delete(s.items, i, i+1)
		return true
	})
}

// ToggleComplete flips the completion state of one item.
func (s *Store) ToggleComplete(id uuid.UUID) {
	s.mutate("toggle", func() bool {
		i := s.indexLocked(id)
		if i < 0 {
			return false
		}
		s.items[i].Complete = !s.items[i].Complete
		return true
	})
}

// ToggleAll sets every item to !AllSelected and then flips AllSelected.
// The flag records the last bulk intent and is not recomputed from the
// items, so it can disagree with them after individual toggles, and two
// calls in a row only restore the previous states when they were uniform.
// With no items it does nothing and AllSelected keeps its value.
func (s *Store) ToggleAll() {
	s.mutate("toggle-all", func() bool {
		if len(s.items) == 0 {
			return false
		}
		v := !s.allSelected
		for i := range s.items {
			s.items[i].Complete = v
		}
		s.allSelected = v
		return true
	})
}

// BeginEdit marks one item as being edited. Several items may be in edit
// mode at once.
func (s *Store) BeginEdit(id uuid.UUID) {
	s.setEditing("begin-edit", id, true)
}

// CommitEdit leaves edit mode. The text is not validated and may be empty.
func (s *Store) CommitEdit(id uuid.UUID) {
	s.setEditing("commit-edit", id, false)
}

func (s *Store) setEditing(op string, id uuid.UUID, v bool) {
	s.mutate(op, func() bool {
		i := s.indexLocked(id)
		if i < 0 || s.items[i].Editing == v {
			return false
		}
		s.items[i].Editing = v
		return true
	})
}

// Rename replaces the text of one item.
func (s *Store) Rename(id uuid.UUID, text string) {
	s.mutate("rename", func() bool {
		i := s.indexLocked(id)
		if i < 0 || s.items[i].Text == text {
			return false
		}
		s.items[i].Text = text
		return true
	})
}

// SetFilter selects which items VisibleItems yields.
func (s *Store) SetFilter(f model.Filter) {
	s.mutate("filter", func() bool {
		if !slices.Contains(model.Filters, f) || s.filter == f {
			return false
		}
		s.filter = f
		return true
	})
}

// ClearCompleted removes every completed item, resets the filter to All
// and clears AllSelected.
func (s *Store) ClearCompleted() {
	s.mutate("clear-completed", func() bool {
		before := len(s.items)
		s.items = slices.DeleteFunc(s.items, func(it model.Item) bool { return it.Complete })
		changed := len(s.items) != before || s.filter != model.All || s.allSelected
		s.filter = model.All
		s.allSelected = false
		return changed
	})
}

// -------------- queries ----------------

// VisibleItems yields the items matching the active filter in list order.
// Each iteration works on the state at the moment it starts, so the
// sequence can be ranged over again to observe later changes.
func (s *Store) VisibleItems() iter.Seq[model.Item] {
	return func(yield func(model.Item) bool) {
		s.mu.Lock()
		items := slices.Clone(s.items)
		f := s.filter
		s.mu.Unlock()

		for _, it := range items {
			if !f.Match(it) {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

// RemainingCount counts incomplete items regardless of the filter.
func (s *Store) RemainingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remaining(s.items)
}

// RemainingLabel renders RemainingCount as "N item left" / "N items left".
func (s *Store) RemainingLabel() string {
	return RemainingLabel(s.RemainingCount())
}

func (s *Store) Filter() model.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Store) AllSelected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allSelected
}

func (s *Store) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Item returns a copy of the item with id.
func (s *Store) Item(id uuid.UUID) (model.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// -------------- internals ----------------

func (s *Store) mutate(op string, fn func() bool) {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		s.log.WithField("op", op).Debug("store: no-op")
		return
	}
	s.version++
	snap := s.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, sub := range s.subs {
		fns = append(fns, sub.fn)
	}
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"op":        op,
		"items":     len(snap.Items),
		"remaining": snap.Remaining(),
		"filter":    snap.Filter.String(),
	}).Debug("store: changed")

	for _, fn := range fns {
		fn(snap.clone())
	}
}

func (s *Store) indexLocked(id uuid.UUID) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}

func (s *Store) freshIDLocked() uuid.UUID {
	for {
		id := s.newID()
		if _, seen := s.issued[id]; id != uuid.Nil && !seen {
			s.issued[id] = struct{}{}
			return id
		}
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Items:       slices.Clone(s.items),
		Filter:      s.filter,
		AllSelected: s.allSelected,
		Draft:       s.draft,
		Version:     s.version,
	}
}

func remaining(items []model.Item) int {
	n := 0
	for _, it := range items {
		if !it.Complete {
			n++
		}
	}
	return n
}
