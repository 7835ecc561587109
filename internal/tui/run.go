package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todos/internal/store"
)

// Run starts the Bubble Tea program over s and blocks until the user quits
// or ctx is cancelled. The store keeps its state afterwards so the caller
// can export it.
func Run(ctx context.Context, s *store.Store, opt Options) error {
	m := New(s, opt)

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opt.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, popts...)

	// Send blocks until the event loop receives the message, and store
	// operations run inside Update, so deliver from a separate goroutine.
	cancel := s.Subscribe(func(snap store.Snapshot) {
		go p.Send(snapshotMsg(snap))
	})
	defer cancel()

	m.log.Debug("tui: starting")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
