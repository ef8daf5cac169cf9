// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TurnDownload is the body of GET /game/{id}/turn.
type TurnDownload struct {
	DownloadURL string `json:"downloadUrl"`
	Size        int64  `json:"size,omitempty"`
	Version     string `json:"version,omitempty"`
}

// TurnSubmit is the body of POST /game/{id}/turn/startSubmit. PutURL is a
// one-time upload target.
type TurnSubmit struct {
	PutURL string `json:"putUrl"`
}

// JoinGameRequest is the body of POST /game/{id}/join.
type JoinGameRequest struct {
	Password string `json:"password,omitempty"`
}
