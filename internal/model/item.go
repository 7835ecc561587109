package model

import (
	"strings"

	"github.com/google/uuid"
)

// Item is the domain model for a todo entry.
// Editing is a transient UI flag; it is never exported.
type Item struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	Complete bool      `json:"complete"`
	Editing  bool      `json:"-"`
}

// Filter selects which items are displayed.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

// Filters lists every filter in tab order.
var Filters = []Filter{All, Active, Completed}

func (f Filter) String() string {
	switch f {
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return "All"
	}
}

// Next cycles All -> Active -> Completed -> All.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// Match reports whether it is shown under f.
func (f Filter) Match(it Item) bool {
	switch f {
	case Active:
		return !it.Complete
	case Completed:
		return it.Complete
	default:
		return true
	}
}

// ParseFilter accepts "all", "active" or "completed" in any case.
func ParseFilter(s string) (Filter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return All, true
	case "active":
		return Active, true
	case "completed", "done":
		return Completed, true
	}
	return All, false
}
