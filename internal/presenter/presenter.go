// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package presenter turns the poller snapshot and the active watch session
// into the tray state and menu model. It owns no network or filesystem
// logic; activation of a menu entry is delegated to the services.
package presenter

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/service"
	"github.com/MKhiriev/go-pydt-client/models"
)

// WebsiteURL is the public site of the service.
const WebsiteURL = "https://playyourdamnturn.com"

// GameEntry is one game line of the menu.
type GameEntry struct {
	GameID        string
	Title         string
	CurrentPlayer string
	// Account is the local account whose turn it is. Empty when it is not
	// the user's turn.
	Account  string
	MyTurn   bool
	Watching bool
	URL      string
}

// Label renders the entry the way the tray shows it.
func (e GameEntry) Label() string {
	label := e.Title
	if e.CurrentPlayer != "" {
		label += " [" + e.CurrentPlayer + "]"
	}
	switch {
	case e.Watching:
		label += " (waiting for save)"
	case e.MyTurn:
		label += " (your turn: " + e.Account + ")"
	}
	return label
}

// AccountEntry is one roster line of the menu.
type AccountEntry struct {
	Name string
	// Error is the reason the account was left out of the last cycle.
	Error string
}

// Menu is a render-ready view of the tray.
type Menu struct {
	State    models.TrayState
	Games    []GameEntry
	Accounts []AccountEntry
	Session  *models.WatchSession
	// Ready is false until the first poll cycle has finished.
	Ready bool
}

// Presenter derives the tray view and forwards menu actions.
type Presenter struct {
	poller   service.PollerService
	transfer service.TransferService
	notices  *NotificationCenter
	logger   *logger.Logger
}

// New creates a Presenter. notices may be nil.
func New(poller service.PollerService, transfer service.TransferService, notices *NotificationCenter, log *logger.Logger) *Presenter {
	if notices == nil {
		notices = NewNotificationCenter(0, log)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Presenter{poller: poller, transfer: transfer, notices: notices, logger: log}
}

// State returns the coarse tray state.
func (p *Presenter) State() models.TrayState {
	return p.Menu().State
}

// Menu builds the menu from the latest snapshot and the active session.
// Only games in progress are listed, turns waiting for the user first.
func (p *Presenter) Menu() Menu {
	snapshot, ok := p.poller.Latest()
	session, watching := p.transfer.ActiveSession()

	m := Menu{Ready: ok}
	if watching {
		m.Session = &session
	}

	for _, g := range snapshot.Games {
		if !g.InProgress || g.Completed {
			continue
		}
		owner, mine := snapshot.MyTurn[g.GameID]
		m.Games = append(m.Games, GameEntry{
			GameID:        g.GameID,
			Title:         g.DisplayName,
			CurrentPlayer: snapshot.PlayerName(g, g.CurrentPlayerSteamID),
			Account:       owner,
			MyTurn:        mine,
			Watching:      watching && session.GameID == g.GameID,
			URL:           GameURL(g.GameID),
		})
	}
	sort.SliceStable(m.Games, func(i, j int) bool {
		return m.Games[i].MyTurn && !m.Games[j].MyTurn
	})

	for _, name := range snapshot.AccountNames() {
		m.Accounts = append(m.Accounts, AccountEntry{Name: name, Error: snapshot.Failed[name]})
	}

	m.State = trayState(m, watching)
	return m
}

func trayState(m Menu, watching bool) models.TrayState {
	if watching {
		return models.TrayAwaitingSave
	}
	for _, g := range m.Games {
		if g.MyTurn {
			return models.TrayMyTurn
		}
	}
	return models.TrayIdle
}

// Activate plays the turn of gameID. Failures are already reported through
// the notification center by the transfer service.
func (p *Presenter) Activate(ctx context.Context, gameID string) (models.WatchSession, error) {
	session, err := p.transfer.PlayTurn(ctx, gameID)
	if err != nil {
		p.logger.Warn().Err(err).Str("game_id", gameID).Msg("activate game failed")
		return models.WatchSession{}, fmt.Errorf("play turn: %w", err)
	}
	return session, nil
}

// Refresh runs a poll cycle, or joins the one in flight.
func (p *Presenter) Refresh(ctx context.Context) error {
	_, err := p.poller.Refresh(ctx)
	return err
}

// CancelWatch drops the active watch session.
func (p *Presenter) CancelWatch() {
	p.transfer.CancelWatch()
}

// Notifications returns the recent notifications, newest last.
func (p *Presenter) Notifications() []models.Notification {
	return p.notices.Recent()
}

// OnChange registers fn to be called after every published snapshot and
// every notification. The returned func removes both subscriptions.
func (p *Presenter) OnChange(fn func()) (unsubscribe func()) {
	stopNotices := p.notices.OnNotify(func(models.Notification) { fn() })
	stopSnapshots := p.poller.Subscribe(func(models.Snapshot) { fn() })
	return func() {
		stopNotices()
		stopSnapshots()
	}
}

// GameURL returns the website page of a game.
func GameURL(gameID string) string {
	return WebsiteURL + "/game/" + gameID
}
