// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pydt-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService manages the roster of locally added accounts.
type AccountService interface {
	// ValidateAndAdd checks token against the remote profile endpoint and, on
	// success, stores it under the profile display name and selects it.
	// Returns [ErrEmptyToken] for a blank token and [ErrInvalidToken] when the
	// remote call fails. The roster is untouched on failure.
	ValidateAndAdd(ctx context.Context, token string) (models.Account, error)

	// Remove deletes the account and its cached profile. The selection is
	// cleared if it pointed at name. Returns [ErrAccountNotFound] when absent.
	Remove(ctx context.Context, name string) error

	// List returns the roster in insertion order.
	List(ctx context.Context) ([]models.Account, error)

	// Selected returns the active account. ok is false when none is selected.
	Selected(ctx context.Context) (account models.Account, ok bool, err error)

	// Select makes name the active account.
	Select(ctx context.Context, name string) error

	// Refresh re-fetches the profile of name. On failure the cached profile
	// is dropped and the token kept.
	Refresh(ctx context.Context, name string) (models.Account, error)
}

// GameService joins and leaves games on behalf of a roster account.
type GameService interface {
	// Join joins the game referenced by gameRef, either a bare id or a game
	// URL. An empty accountName means the selected account.
	Join(ctx context.Context, accountName, gameRef, password string) (models.Game, error)

	// Leave leaves a game that has not started yet.
	Leave(ctx context.Context, accountName, gameID string) (models.Game, error)
}

// PollerService runs poll cycles and owns the latest snapshot, the per
// account poll cursors and the roster profile cache.
type PollerService interface {
	// Refresh runs a poll cycle, or joins the one in flight, and returns its
	// snapshot.
	Refresh(ctx context.Context) (models.Snapshot, error)

	// Latest returns the last published snapshot. ok is false before the
	// first cycle completes.
	Latest() (snapshot models.Snapshot, ok bool)

	// Subscribe registers fn to be called with every published snapshot.
	// The returned func removes the subscription.
	Subscribe(fn func(models.Snapshot)) (unsubscribe func())
}

// PollJob drives PollerService on a fixed interval.
type PollJob interface {
	// Start runs one cycle immediately and then one every interval,
	// defaulting to 60 seconds if interval is zero or negative. Any
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// TransferService moves a turn save from the server into the save directory
// and the re-saved file back. At most one watch session exists at a time.
type TransferService interface {
	// PlayTurn tears down any active session, downloads the current save of
	// gameID unless it is the first turn, and starts watching for the
	// re-saved file. Returns [ErrNotMyTurn] unless the latest snapshot flags
	// gameID as the user's turn.
	PlayTurn(ctx context.Context, gameID string) (models.WatchSession, error)

	// CancelWatch tears down the active session, if any.
	CancelWatch()

	// ActiveSession returns a view of the active session.
	ActiveSession() (session models.WatchSession, ok bool)

	// Close tears down the active session and rejects further PlayTurn calls.
	Close()
}

// Notifier receives user-facing outcomes of the transfer path.
type Notifier interface {
	// NotifyTurnSubmitted reports a confirmed upload.
	NotifyTurnSubmitted(gameID, gameName string)
	// NotifyUploadFailed reports a failed begin or PUT step. The watch
	// session stays active.
	NotifyUploadFailed(gameID, gameName string, err error)
	// NotifyConfirmFailed reports a failed confirm after a successful PUT.
	// The watch session stays active and nothing is retried.
	NotifyConfirmFailed(gameID, gameName string, err error)
	// NotifyTransferFailed reports a failed download or watch setup.
	NotifyTransferFailed(gameID, gameName string, err error)
}
