// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pydt-client/internal/adapter"
	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/store"
	"github.com/MKhiriev/go-pydt-client/models"
)

type accountService struct {
	roster store.RosterRepository
	remote adapter.RemoteAdapter
	logger *logger.Logger
}

// NewAccountService creates an AccountService backed by roster and remote.
func NewAccountService(roster store.RosterRepository, remote adapter.RemoteAdapter, log *logger.Logger) AccountService {
	return &accountService{roster: roster, remote: remote, logger: log}
}

// ValidateAndAdd implements AccountService.
func (s *accountService) ValidateAndAdd(ctx context.Context, token string) (models.Account, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Account{}, ErrEmptyToken
	}

	user, err := s.remote.GetCurrentUser(ctx, token)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "accountService.ValidateAndAdd").Msg("token rejected")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	account := models.Account{Name: user.DisplayName, Token: token, SteamID: user.SteamID}

	if err = s.roster.AddAccount(ctx, account, user); err != nil {
		return models.Account{}, fmt.Errorf("save account: %w", err)
	}

	s.logger.Info().Object("account", account).Msg("account added")
	return account, nil
}

// Remove implements AccountService.
func (s *accountService) Remove(ctx context.Context, name string) error {
	err := s.roster.DeleteAccount(ctx, name)
	if errors.Is(err, store.ErrAccountNotFound) {
		return ErrAccountNotFound
	}
	if err != nil {
		return fmt.Errorf("remove account %q: %w", name, err)
	}

	s.logger.Info().Str("account", name).Msg("account removed")
	return nil
}

// List implements AccountService.
func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.roster.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Selected implements AccountService. A selection pointing at a removed
// account reads as no selection.
func (s *accountService) Selected(ctx context.Context) (models.Account, bool, error) {
	name, err := s.roster.GetSetting(ctx, store.SettingSelectedAccount)
	if errors.Is(err, store.ErrSettingNotFound) {
		return models.Account{}, false, nil
	}
	if err != nil {
		return models.Account{}, false, fmt.Errorf("read selection: %w", err)
	}

	account, err := s.roster.GetAccount(ctx, name)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, false, nil
	}
	if err != nil {
		return models.Account{}, false, fmt.Errorf("read selected account: %w", err)
	}

	return account, true, nil
}

// Select implements AccountService.
func (s *accountService) Select(ctx context.Context, name string) error {
	if _, err := s.get(ctx, name); err != nil {
		return err
	}
	return s.roster.SetSetting(ctx, store.SettingSelectedAccount, name)
}

// Refresh implements AccountService.
func (s *accountService) Refresh(ctx context.Context, name string) (models.Account, error) {
	account, err := s.get(ctx, name)
	if err != nil {
		return models.Account{}, err
	}

	user, err := s.remote.GetCurrentUser(ctx, account.Token)
	if err != nil {
		if delErr := s.roster.DeleteProfile(ctx, name); delErr != nil {
			s.logger.Err(delErr).Str("account", name).Msg("failed to drop cached profile")
		}
		return models.Account{Name: account.Name, Token: account.Token}, fmt.Errorf("refresh profile of %q: %w", name, err)
	}

	if err = s.roster.SaveProfile(ctx, name, user); err != nil {
		return models.Account{}, fmt.Errorf("save profile: %w", err)
	}

	account.SteamID = user.SteamID
	return account, nil
}

func (s *accountService) get(ctx context.Context, name string) (models.Account, error) {
	account, err := s.roster.GetAccount(ctx, name)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("read account %q: %w", name, err)
	}
	return account, nil
}

// resolveAccount returns the named account, or the selected one when name
// is empty.
func resolveAccount(ctx context.Context, accounts AccountService, name string) (models.Account, error) {
	if name != "" {
		list, err := accounts.List(ctx)
		if err != nil {
			return models.Account{}, err
		}
		for _, a := range list {
			if a.Name == name {
				return a, nil
			}
		}
		return models.Account{}, ErrAccountNotFound
	}

	account, ok, err := accounts.Selected(ctx)
	if err != nil {
		return models.Account{}, err
	}
	if !ok {
		return models.Account{}, ErrNoAccountSelected
	}
	return account, nil
}
