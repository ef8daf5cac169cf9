// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"time"
)

// Snapshot is the immutable result of one poll cycle. Consumers must treat
// every field as read-only; the poller never modifies a published snapshot.
type Snapshot struct {
	// CycleID identifies the poll cycle that produced the snapshot.
	CycleID string

	// TakenAt is when the cycle finished.
	TakenAt time.Time

	// Games is the merged game set of every account, deduplicated by GameID,
	// in first-seen order.
	Games []Game

	// MyTurn maps a GameID to the name of the local account whose turn it is.
	MyTurn map[string]string

	// Accounts is the roster as seen by the cycle, keyed by account name.
	Accounts map[string]Account

	// Profiles is the roster profile cache keyed by steam id.
	Profiles map[string]SteamProfile

	// ProfilesExpireAt is the expiry of the whole profile cache.
	ProfilesExpireAt time.Time

	// Failed holds the accounts that contributed no games to this cycle, because
	// their steam id or game list could not be fetched, and why.
	Failed map[string]string
}

// Game returns the game with the given id.
func (s Snapshot) Game(gameID string) (Game, bool) {
	for _, g := range s.Games {
		if g.GameID == gameID {
			return g, true
		}
	}
	return Game{}, false
}

// TurnOwner returns the account whose turn it is in gameID.
func (s Snapshot) TurnOwner(gameID string) (Account, bool) {
	name, ok := s.MyTurn[gameID]
	if !ok {
		return Account{}, false
	}
	acc, ok := s.Accounts[name]
	return acc, ok
}

// MyTurnGames returns the games waiting for a local account, in game order.
func (s Snapshot) MyTurnGames() []Game {
	games := make([]Game, 0, len(s.MyTurn))
	for _, g := range s.Games {
		if _, ok := s.MyTurn[g.GameID]; ok {
			games = append(games, g)
		}
	}
	return games
}

// AccountNames returns the roster names sorted alphabetically.
func (s Snapshot) AccountNames() []string {
	names := make([]string, 0, len(s.Accounts))
	for name := range s.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlayerName resolves a steam id to a display name using the profile cache
// and falls back to the seat names of the game.
func (s Snapshot) PlayerName(g Game, steamID string) string {
	if p, ok := s.Profiles[steamID]; ok && p.PersonaName != "" {
		return p.PersonaName
	}
	for _, p := range g.Players {
		if p.SteamID == steamID && p.DisplayName != "" {
			return p.DisplayName
		}
	}
	return ""
}
