package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
)

// Run opens the review page and blocks until the reviewer quits. The
// returned decision is pending unless an approve or reject was confirmed.
func Run(ctx context.Context, opts ...Option) (model.Decision, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Gateway == nil {
		return model.NewDecision(), fmt.Errorf("review gateway is required")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cleanupTerminal := func() {
		// Best-effort restore if the program is torn down by a signal.
		_, _ = os.Stdout.Write([]byte("\033[?1049l")) // Exit alternate screen
		_, _ = os.Stdout.Write([]byte("\033[?25h"))   // Show cursor
		_, _ = os.Stdout.Write([]byte("\033[m"))      // Reset colors
	}
	defer cleanupTerminal()

	go func() {
		select {
		case <-sigChan:
			cleanupTerminal()
			cancel()
		case <-ctx.Done():
		}
	}()

	p := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return model.NewDecision(), fmt.Errorf("review page failed: %w", err)
	}

	page, ok := final.(Model)
	if !ok {
		return model.NewDecision(), fmt.Errorf("unexpected final model type %T", final)
	}
	return page.Decision(), nil
}
