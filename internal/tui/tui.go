package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
)

// ErrUserQuit reports that the user left the program from the login
// flow instead of authenticating.
var ErrUserQuit = errors.New("user quit")

// TUI drives the interactive terminal client. The login flow runs
// before any vault data exists; the main loop runs over a live session
// and its sync service.
type TUI struct {
	auth   service.ClientAuthService
	logger *logger.Logger
}

func New(auth service.ClientAuthService, logger *logger.Logger) (*TUI, error) {
	if auth == nil {
		return nil, errors.New("tui: auth service is nil")
	}
	return &TUI{auth: auth, logger: logger}, nil
}

// LoginFlow walks the welcome/login/register screens until the user
// authenticates or quits. On success the established session context
// is returned; quitting yields [ErrUserQuit].
func (t *TUI) LoginFlow(ctx context.Context) (*service.SessionContext, error) {
	model := newLoginAppModel(ctx, t.auth)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.err != nil {
		return nil, result.err
	}
	if result.session == nil {
		return nil, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the vault screens over an authenticated session. The
// returned flag reports whether the user asked to log out (as opposed
// to quitting the program).
func (t *TUI) MainLoop(ctx context.Context, sync service.VaultSyncService) (logout bool, err error) {
	model := newMainAppModel(ctx, sync)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
