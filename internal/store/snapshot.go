package store

import (
	"fmt"
	"slices"

	"github.com/idilsaglam/todos/internal/model"
)

// Snapshot is an immutable copy of a Store's state. Each subscriber gets its
// own copy, so it may keep or modify the slice freely.
type Snapshot struct {
	Items       []model.Item
	Filter      model.Filter
	AllSelected bool
	Draft       string

	// Version increases by one with every change, so a consumer receiving
	// snapshots out of order can drop stale ones.
	Version uint64
}

// Visible returns the items matching Filter, in list order.
func (s Snapshot) Visible() []model.Item {
	out := make([]model.Item, 0, len(s.Items))
	for _, it := range s.Items {
		if s.Filter.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Remaining counts incomplete items regardless of Filter.
func (s Snapshot) Remaining() int { return remaining(s.Items) }

// Stats returns the done and pending counts for headers and progress bars.
func (s Snapshot) Stats() (done, pending int) {
	pending = remaining(s.Items)
	return len(s.Items) - pending, pending
}

func (s Snapshot) clone() Snapshot {
	s.Items = slices.Clone(s.Items)
	return s
}

// RemainingLabel formats n with singular or plural wording.
func RemainingLabel(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

// Subscribe registers fn to receive a snapshot after every state change.
// Operations that change nothing do not notify. The returned func removes
// the subscription and is safe to call more than once.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool { return sub.id == id })
	}
}
