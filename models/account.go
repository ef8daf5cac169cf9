// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/rs/zerolog"

// Account is a locally registered PYDT account.
//
// Token is the only externally supplied secret. It is excluded from JSON,
// from String and from structured log output so that an account value can be
// logged freely.
type Account struct {
	// Name is the display name returned by the remote profile. It is the
	// roster key.
	Name string `json:"name"`

	// Token is the raw PYDT API token sent in the Authorization header.
	Token string `json:"-"`

	// SteamID is the steam identity of the account. Empty until the profile
	// has been fetched at least once.
	SteamID string `json:"steam_id,omitempty"`
}

// String returns the account name. The token is never part of the output.
func (a Account) String() string {
	return a.Name
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (a Account) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", a.Name)
	if a.SteamID != "" {
		e.Str("steam_id", a.SteamID)
	}
}

// RosterEntry is the per-account state cached by the poller between cycles.
type RosterEntry struct {
	// SteamID is resolved from the account profile on the first successful
	// profile fetch.
	SteamID string

	// PollURL is the server supplied poll cursor. Empty means the next cycle
	// performs a full game list fetch.
	PollURL string
}
