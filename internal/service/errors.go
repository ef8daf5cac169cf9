// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrEmptyToken is returned when an account is added with a blank token.
	ErrEmptyToken = errors.New("token is empty")
	// ErrInvalidToken is returned when the remote side rejects a token. It
	// wraps the remote cause.
	ErrInvalidToken = errors.New("token is invalid")
	// ErrAccountNotFound is returned for a name that is not in the roster.
	ErrAccountNotFound = errors.New("account not found")
	// ErrNoAccountSelected is returned when an operation needs the active
	// account and none is selected.
	ErrNoAccountSelected = errors.New("no account selected")

	// ErrNotMyTurn is returned when a turn is played for a game that is not
	// flagged as the user's turn in the latest snapshot.
	ErrNotMyTurn = errors.New("not my turn in this game")
	// ErrTransferClosed is returned by PlayTurn after Close.
	ErrTransferClosed = errors.New("transfer service closed")

	// ErrInvalidGameRef is returned for a join reference that is neither a
	// game id nor a game URL.
	ErrInvalidGameRef = errors.New("invalid game reference")
	// ErrGameNotFound is returned when the remote side does not know a game.
	ErrGameNotFound = errors.New("game not found")
	// ErrGameRejected is returned when the remote side refuses a join or
	// leave, for example a wrong password or a full game.
	ErrGameRejected = errors.New("game request rejected")
)
