package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/tui"
	"github.com/MKhiriev/go-secret-vault/internal/vault"
)

// App ties the login flow and the vault main loop together. A sync
// service exists only between a successful login and the matching
// logout; each new session gets a fresh one over the shared cache.
type App struct {
	auth          service.ClientAuthService
	serverAdapter adapter.ServerAdapter
	cache         *vault.Cache
	ui            *tui.TUI

	logger *logger.Logger
}

func NewApp(auth service.ClientAuthService, serverAdapter adapter.ServerAdapter, cache *vault.Cache, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if auth == nil || serverAdapter == nil || cache == nil || ui == nil {
		return nil, errors.New("client: missing dependency")
	}

	return &App{
		auth:          auth,
		serverAdapter: serverAdapter,
		cache:         cache,
		ui:            ui,
		logger:        logger,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	for {
		session, err := a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		sync := service.NewVaultSyncService(a.serverAdapter, session, a.cache, a.logger)

		if report, loadErr := sync.LoadAll(ctx); loadErr != nil {
			a.logger.Err(loadErr).Msg("initial vault load failed")
		} else if report.Partial() {
			a.logger.Warn().Int("skipped", len(report.Failures)).Msg("some records could not be decrypted")
		}

		logout, uiErr := a.ui.MainLoop(ctx, sync)

		// Local teardown happens regardless of how the loop ended.
		if logoutErr := a.auth.Logout(ctx, session); logoutErr != nil {
			a.logger.Err(logoutErr).Msg("logout on server failed, local state cleared")
		}

		if uiErr != nil {
			return uiErr
		}
		if !logout {
			return nil
		}
	}
}
