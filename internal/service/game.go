// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-pydt-client/internal/adapter"
	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/models"
)

var (
	gameURLPattern = regexp.MustCompile(`/game/([a-f0-9-]+)/?$`)
	gameIDPattern  = regexp.MustCompile(`^[a-f0-9-]+$`)
)

type gameService struct {
	accounts AccountService
	remote   adapter.RemoteAdapter
	poller   PollerService
	logger   *logger.Logger
}

// NewGameService creates a GameService. poller is refreshed after every
// successful join or leave.
func NewGameService(accounts AccountService, remote adapter.RemoteAdapter, poller PollerService, log *logger.Logger) GameService {
	return &gameService{accounts: accounts, remote: remote, poller: poller, logger: log}
}

// ParseGameRef extracts a game id from a bare id or a game URL such as
// https://playyourdamnturn.com/game/<id>.
func ParseGameRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if m := gameURLPattern.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if gameIDPattern.MatchString(ref) {
		return ref, nil
	}
	return "", ErrInvalidGameRef
}

// Join implements GameService.
func (s *gameService) Join(ctx context.Context, accountName, gameRef, password string) (models.Game, error) {
	gameID, err := ParseGameRef(gameRef)
	if err != nil {
		return models.Game{}, err
	}

	account, err := resolveAccount(ctx, s.accounts, accountName)
	if err != nil {
		return models.Game{}, err
	}

	game, err := s.remote.JoinGame(ctx, account.Token, gameID, password)
	if err != nil {
		return models.Game{}, mapGameError(err)
	}

	s.logger.Info().Str("game_id", gameID).Str("account", account.Name).Msg("joined game")
	s.refresh(ctx)
	return game, nil
}

// Leave implements GameService.
func (s *gameService) Leave(ctx context.Context, accountName, gameID string) (models.Game, error) {
	gameID, err := ParseGameRef(gameID)
	if err != nil {
		return models.Game{}, err
	}

	account, err := resolveAccount(ctx, s.accounts, accountName)
	if err != nil {
		return models.Game{}, err
	}

	game, err := s.remote.LeaveGame(ctx, account.Token, gameID)
	if err != nil {
		return models.Game{}, mapGameError(err)
	}

	s.logger.Info().Str("game_id", gameID).Str("account", account.Name).Msg("left game")
	s.refresh(ctx)
	return game, nil
}

func (s *gameService) refresh(ctx context.Context) {
	if s.poller == nil {
		return
	}
	if _, err := s.poller.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("poll refresh after game change failed")
	}
}
