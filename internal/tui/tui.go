// Package tui renders the tray menu in the terminal with bubbletea. It is
// the headless stand-in for a native tray icon: it shows the tray state, the
// games with whose turn it is, the roster and recent notifications, and it
// forwards menu actions to the presenter and the account service.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/presenter"
	"github.com/MKhiriev/go-pydt-client/internal/service"
	"github.com/MKhiriev/go-pydt-client/models"
)

type TUI struct {
	presenter *presenter.Presenter
	accounts  service.AccountService
	logs      *logger.RingBuffer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates the terminal tray. logs may be nil, the log screen is empty
// then.
func New(p *presenter.Presenter, accounts service.AccountService, logs *logger.RingBuffer, info models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{presenter: p, accounts: accounts, logs: logs, buildInfo: info, logger: log}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newTrayModel(ctx, t.presenter, t.accounts, t.logs, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.presenter.OnChange(func() { program.Send(changedMsg{}) })
	defer unsubscribe()

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Debug().Msg("tray closed by shutdown")
		return nil
	}
	return err
}
