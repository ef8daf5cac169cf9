// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FirstTurnOrdinal is the turn ordinal of a game nobody has played a turn in
// yet. No save exists on the server for such a game.
const FirstTurnOrdinal = 1

// Game is a snapshot of one PYDT game as returned by the game list or the
// poll cursor. Games are never mutated locally.
type Game struct {
	GameID               string       `json:"gameId"`
	DisplayName          string       `json:"displayName"`
	CurrentPlayerSteamID string       `json:"currentPlayerSteamId"`
	TurnOrdinal          int          `json:"gameTurnRangeKey"`
	Round                int          `json:"round,omitempty"`
	InProgress           bool         `json:"inProgress"`
	Completed            bool         `json:"completed,omitempty"`
	GameType             string       `json:"gameType,omitempty"`
	Players              []GamePlayer `json:"players"`
}

// GamePlayer is a seat in a game.
type GamePlayer struct {
	SteamID     string `json:"steamId"`
	DisplayName string `json:"displayName,omitempty"`
}

// IsFirstTurn reports whether no turn has been played in the game yet.
func (g Game) IsFirstTurn() bool {
	return g.TurnOrdinal <= FirstTurnOrdinal
}

// PlayerSteamIDs returns the steam ids of the current player and every seat,
// without duplicates and without empty values.
func (g Game) PlayerSteamIDs() []string {
	seen := make(map[string]struct{}, len(g.Players)+1)
	ids := make([]string, 0, len(g.Players)+1)

	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	add(g.CurrentPlayerSteamID)
	for _, p := range g.Players {
		add(p.SteamID)
	}

	return ids
}

// GamesResponse is the body of GET /user/games.
type GamesResponse struct {
	Data    []Game `json:"data"`
	PollURL string `json:"pollUrl,omitempty"`
}
