package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/store"
	"github.com/idilsaglam/todos/internal/ui"
)

// printList draws snap as a framed panel: header with counts, progress,
// the visible items, then the remaining label and the filter tabs.
func printList(w io.Writer, snap store.Snapshot) {
	t := ui.Current()
	d, p := snap.Stats()

	all := t.AllOff
	if snap.AllSelected {
		all = t.AllOn
	}
	header := fmt.Sprintf("%s  %s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "TODOS"),
		ui.C(t.Accent, all),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymUnchecked), p,
		ui.C(t.Accent, "Total"), len(snap.Items),
	)

	lines := []string{header, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)), ""}
	lines = append(lines, itemLines(snap.Visible())...)
	lines = append(lines, "", footerLine(snap))
	ui.Panel(w, lines)
}

func itemLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		text := it.Text
		if r := []rune(text); len(r) > 80 {
			text = string(r[:77]) + "..."
		}
		box, color := t.BoxUnchecked, t.Muted
		if it.Complete {
			box, color, text = t.BoxChecked, t.Success, ui.Strike(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.Dim(fmt.Sprintf("%2d.", i+1)), ui.C(color, box), text))
	}
	return out
}

func footerLine(snap store.Snapshot) string {
	t := ui.Current()
	tabs := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		if f == snap.Filter {
			tabs = append(tabs, ui.C(t.Accent, "["+f.String()+"]"))
			continue
		}
		tabs = append(tabs, ui.C(t.Muted, f.String()))
	}
	return store.RemainingLabel(snap.Remaining()) + "   " + strings.Join(tabs, " ")
}
