// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the profile returned by GET /user/getCurrent for the owner of a
// token. Only the fields the client relies on are decoded.
type User struct {
	DisplayName     string `json:"displayName"`
	SteamID         string `json:"steamId"`
	SteamProfileURL string `json:"steamProfileUrl,omitempty"`
	AvatarMedium    string `json:"avatarMedium,omitempty"`
	AvatarFull      string `json:"avatarFull,omitempty"`
	TurnsPlayed     int    `json:"turnsPlayed,omitempty"`
	VacationMode    bool   `json:"vacationMode,omitempty"`
}

// SteamProfile is a public steam profile returned by
// GET /user/steamProfiles.
type SteamProfile struct {
	SteamID     string `json:"steamid"`
	PersonaName string `json:"personaname"`
	ProfileURL  string `json:"profileurl,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	AvatarURL   string `json:"avatarmedium,omitempty"`
	AvatarFull  string `json:"avatarfull,omitempty"`
}
