package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/config"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/tui"
)

// runView runs the interactive preview until the user quits or a signal
// arrives. A found configuration file is watched and reloaded on change.
func runView(path string) error {
	cfg, path, err := config.LoadOrDefaults(path)
	if err != nil {
		return err
	}

	var reloader tui.Reloader
	if path != "" {
		w, err := config.Watch(path)
		if err != nil {
			return err
		}
		defer w.Close()
		reloader = w
	}

	model, err := tui.New(cfg, path, reloader)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
