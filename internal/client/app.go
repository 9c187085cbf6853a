package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/service"
	"github.com/dsmirnov/cryptodiary/internal/tui"
	"github.com/dsmirnov/cryptodiary/internal/workers"
)

// App is the client application: it alternates between the login flow and
// the diary loop until the user quits. Logout tears down all client state
// and returns to the login flow.
type App struct {
	services   *service.ClientServices
	ui         *tui.TUI
	background *workers.Workers
	logger     *logger.Logger

	startOnce sync.Once
}

// NewApp assembles the client application over pre-wired services, UI, and
// background workers.
func NewApp(services *service.ClientServices, ui *tui.TUI, background *workers.Workers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	return &App{
		services:   services,
		ui:         ui,
		background: background,
		logger:     log,
	}, nil
}

// Run implements [Client]. Background workers start after the first
// successful login; their requests simply fail quietly while no session is
// active, so they are left running across logouts.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		if err := a.ui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		if a.background != nil {
			a.startOnce.Do(a.background.Run)
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.services.Session.Logout()
		a.logger.Info().Msg("logged out, returning to login flow")
	}
}
