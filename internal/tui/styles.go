package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the lipgloss palette for one theme.
type styles struct {
	title, success, pending, accent, muted lipgloss.Style
	selected, done, help, tab, tabActive   lipgloss.Style
	frame, bar                             lipgloss.Style

	boxChecked, boxUnchecked string
	allOn, allOff            string
	editing                  string
}

func newStyles(theme string) styles {
	s := styles{
		title:    lipgloss.NewStyle().Bold(true),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:    lipgloss.NewStyle().Faint(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		help:     lipgloss.NewStyle().Faint(true),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		bar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),

		boxChecked:   "☑",
		boxUnchecked: "☐",
		allOn:        "●",
		allOff:       "○",
		editing:      "✎",
	}
	s.tab = s.muted
	s.tabActive = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true).Underline(true)

	switch strings.ToLower(theme) {
	case "neon":
		s.title = s.title.Foreground(lipgloss.Color("13"))
		s.accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		s.pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.tabActive = s.tabActive.Foreground(lipgloss.Color("14"))
		s.boxChecked, s.boxUnchecked = "◼", "◻"
	case "mono":
		plain := lipgloss.NewStyle()
		s.success, s.pending, s.accent = plain, plain, plain
		s.tabActive = plain.Bold(true).Underline(true)
		s.frame = s.frame.Border(lipgloss.NormalBorder()).UnsetBorderForeground()
		s.bar = s.bar.Border(lipgloss.NormalBorder()).UnsetBorderForeground()
		s.boxChecked, s.boxUnchecked = "[x]", "[ ]"
		s.allOn, s.allOff = "(*)", "( )"
		s.editing = "*"
	}
	return s
}
