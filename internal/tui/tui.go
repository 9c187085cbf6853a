// Package tui implements the terminal user interface of the diary client.
//
// The interface runs in two phases. LoginFlow covers everything up to an
// unlocked session: the start menu, account login and registration, and the
// passphrase prompt that installs the session key material. MainLoop is the
// diary itself: the entry list with search and date filters, the entry view,
// and the editor.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/service"
	"github.com/dsmirnov/cryptodiary/models"
)

// ErrUserQuit is returned when the user leaves the program from the login
// flow instead of completing it.
var ErrUserQuit = errors.New("пользователь вышел из программы")

// TUI drives the Bubble Tea programs over the client service graph.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
}

// New constructs the terminal interface.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the pre-diary screens until the session is authenticated
// and the keyring is unlocked. Returns [ErrUserQuit] if the user quits
// before that point.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.Session),
		"register": NewRegisterModel(ctx, t.services.Session),
		"unlock":   NewUnlockModel(t.services.Session),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.unlocked {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the diary screens until the user quits or logs out.
// A true result means the user chose logout and wants the login flow again.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
