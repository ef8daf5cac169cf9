// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pydt-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/roster_store_mock.go -package=mock

// Setting keys persisted in the settings table.
const (
	// SettingSelectedAccount holds the name of the active account.
	SettingSelectedAccount = "selected_account"
)

// RosterRepository persists the account roster: tokens keyed by display
// name, the last fetched profile of each account and small settings.
type RosterRepository interface {
	// SaveAccount inserts the account or replaces the token of an existing
	// account with the same name. Roster order is insertion order.
	SaveAccount(ctx context.Context, account models.Account) error
	// AddAccount upserts the account and its profile and selects it, in one
	// transaction. Nothing is written when any step fails.
	AddAccount(ctx context.Context, account models.Account, user models.User) error
	// GetAccount returns [ErrAccountNotFound] for an unknown name.
	GetAccount(ctx context.Context, name string) (models.Account, error)
	// ListAccounts returns all accounts in roster order, with SteamID filled
	// from the stored profile when present.
	ListAccounts(ctx context.Context) ([]models.Account, error)
	// DeleteAccount removes the account, its profile and the selection if it
	// points at name, in one transaction. Returns [ErrAccountNotFound] when
	// nothing was deleted.
	DeleteAccount(ctx context.Context, name string) error

	SaveProfile(ctx context.Context, accountName string, user models.User) error
	// GetProfile returns [ErrProfileNotFound] when no profile is cached.
	GetProfile(ctx context.Context, accountName string) (models.User, error)
	DeleteProfile(ctx context.Context, accountName string) error

	// GetSetting returns [ErrSettingNotFound] for an unset key.
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}
