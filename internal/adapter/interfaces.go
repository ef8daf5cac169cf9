// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Play Your Damn Turn (PYDT) API and its blob storage.
//
// The primary abstraction is [RemoteAdapter], which decouples the service
// layer from the underlying protocol. The package ships a resty based
// implementation ([NewHTTPRemoteAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to [*HTTPError], which unwraps
// to the status sentinels in errors.go so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-pydt-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter defines stateless communication with the PYDT API. The token
// is passed per call and sent verbatim in the Authorization header. No call
// retries.
type RemoteAdapter interface {
	// GetCurrentUser fetches the profile the token belongs to. Used to
	// validate a token before it enters the roster.
	GetCurrentUser(ctx context.Context, token string) (models.User, error)

	// GetGames fetches the full game list of the token owner together with an
	// optional poll cursor. Returns [ErrMalformedResponse] when the response
	// carries no data field.
	GetGames(ctx context.Context, token string) (models.GamesResponse, error)

	// PollGames fetches the game list from a poll cursor URL. The request is
	// sent without an Authorization header.
	PollGames(ctx context.Context, pollURL string) ([]models.Game, error)

	// GetSteamProfiles resolves steam ids to profiles in one batched request.
	// An empty id list returns without a request.
	GetSteamProfiles(ctx context.Context, token string, steamIDs []string) ([]models.SteamProfile, error)

	// GetTurnDownload returns the compressed save download location of the
	// current turn of a game.
	GetTurnDownload(ctx context.Context, token, gameID string) (models.TurnDownload, error)

	// StartTurnSubmit begins a turn upload and returns the presigned PUT URL.
	StartTurnSubmit(ctx context.Context, token, gameID string) (models.TurnSubmit, error)

	// FinishTurnSubmit confirms a previously uploaded save and returns the
	// updated game.
	FinishTurnSubmit(ctx context.Context, token, gameID string) (models.Game, error)

	// JoinGame joins the token owner to a game. Password may be empty.
	JoinGame(ctx context.Context, token, gameID, password string) (models.Game, error)

	// LeaveGame removes the token owner from a game that has not started.
	LeaveGame(ctx context.Context, token, gameID string) (models.Game, error)

	// DownloadSave streams a save blob. The caller must close the returned
	// reader. The body is not buffered in memory.
	DownloadSave(ctx context.Context, url string) (io.ReadCloser, error)

	// UploadSave PUTs gzip compressed save bytes to a presigned URL.
	UploadSave(ctx context.Context, putURL string, gzipped []byte) error
}
