// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pydt-client/internal/config"
	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/utils"
	"github.com/MKhiriev/go-pydt-client/models"
	"github.com/go-resty/resty/v2"
)

type httpRemoteAdapter struct {
	// api serves JSON calls and is bounded by the request timeout.
	api *utils.HTTPClient
	// blobs serves save downloads and uploads and is bounded by the
	// transfer timeout.
	blobs *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the resty implementation of
// [RemoteAdapter]. It normalises and validates cfg.BaseURL and builds two
// HTTP clients: one for API calls with cfg.RequestTimeout and one for blob
// transfers with cfg.TransferTimeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPRemoteAdapter(cfg config.Adapter, log *logger.Logger) (RemoteAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	return &httpRemoteAdapter{
		api:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		blobs:  utils.NewHTTPClient("", cfg.TransferTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetCurrentUser implements [RemoteAdapter]: GET /user/getCurrent.
func (h *httpRemoteAdapter) GetCurrentUser(ctx context.Context, token string) (models.User, error) {
	resp, err := h.authedRequest(ctx, token).Get("/user/getCurrent")
	if err != nil {
		return models.User{}, fmt.Errorf("get current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decode(resp, "current user", &user); err != nil {
		return models.User{}, err
	}
	if user.DisplayName == "" {
		return models.User{}, fmt.Errorf("current user without display name: %w", ErrMalformedResponse)
	}

	return user, nil
}

// GetGames implements [RemoteAdapter]: GET /user/games.
func (h *httpRemoteAdapter) GetGames(ctx context.Context, token string) (models.GamesResponse, error) {
	resp, err := h.authedRequest(ctx, token).Get("/user/games")
	if err != nil {
		return models.GamesResponse{}, fmt.Errorf("get games request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GamesResponse{}, err
	}

	var raw struct {
		Data    json.RawMessage `json:"data"`
		PollURL string          `json:"pollUrl"`
	}
	if err = decode(resp, "games", &raw); err != nil {
		return models.GamesResponse{}, err
	}
	if len(raw.Data) == 0 || string(raw.Data) == "null" {
		return models.GamesResponse{}, fmt.Errorf("games response without data: %w", ErrMalformedResponse)
	}

	var games []models.Game
	if err = json.Unmarshal(raw.Data, &games); err != nil {
		return models.GamesResponse{}, &DecodeError{Op: "games", Err: err}
	}

	return models.GamesResponse{Data: games, PollURL: raw.PollURL}, nil
}

// PollGames implements [RemoteAdapter]. The poll URL is absolute and the
// request carries no Authorization header.
func (h *httpRemoteAdapter) PollGames(ctx context.Context, pollURL string) ([]models.Game, error) {
	resp, err := h.api.R().SetContext(ctx).Get(pollURL)
	if err != nil {
		return nil, fmt.Errorf("poll games request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var games []models.Game
	if err = decode(resp, "poll games", &games); err != nil {
		return nil, err
	}
	if games == nil {
		return nil, fmt.Errorf("poll response is null: %w", ErrMalformedResponse)
	}

	return games, nil
}

// GetSteamProfiles implements [RemoteAdapter]:
// GET /user/steamProfiles?steamIds=a,b,c.
func (h *httpRemoteAdapter) GetSteamProfiles(ctx context.Context, token string, steamIDs []string) ([]models.SteamProfile, error) {
	if len(steamIDs) == 0 {
		return nil, nil
	}

	resp, err := h.authedRequest(ctx, token).
		SetQueryParam("steamIds", strings.Join(steamIDs, ",")).
		Get("/user/steamProfiles")
	if err != nil {
		return nil, fmt.Errorf("get steam profiles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var profiles []models.SteamProfile
	if err = decode(resp, "steam profiles", &profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

// GetTurnDownload implements [RemoteAdapter]:
// GET /game/{id}/turn?compressed=yup.
func (h *httpRemoteAdapter) GetTurnDownload(ctx context.Context, token, gameID string) (models.TurnDownload, error) {
	resp, err := h.gameRequest(ctx, token, gameID).
		SetQueryParam("compressed", "yup").
		Get("/game/{gameID}/turn")
	if err != nil {
		return models.TurnDownload{}, fmt.Errorf("get turn download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TurnDownload{}, err
	}

	var td models.TurnDownload
	if err = decode(resp, "turn download", &td); err != nil {
		return models.TurnDownload{}, err
	}
	if td.DownloadURL == "" {
		return models.TurnDownload{}, fmt.Errorf("turn download without url: %w", ErrMalformedResponse)
	}

	return td, nil
}

// StartTurnSubmit implements [RemoteAdapter]:
// POST /game/{id}/turn/startSubmit.
func (h *httpRemoteAdapter) StartTurnSubmit(ctx context.Context, token, gameID string) (models.TurnSubmit, error) {
	resp, err := h.gameRequest(ctx, token, gameID).Post("/game/{gameID}/turn/startSubmit")
	if err != nil {
		return models.TurnSubmit{}, fmt.Errorf("start turn submit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TurnSubmit{}, err
	}

	var ts models.TurnSubmit
	if err = decode(resp, "start submit", &ts); err != nil {
		return models.TurnSubmit{}, err
	}
	if ts.PutURL == "" {
		return models.TurnSubmit{}, fmt.Errorf("start submit without put url: %w", ErrMalformedResponse)
	}

	return ts, nil
}

// FinishTurnSubmit implements [RemoteAdapter]:
// POST /game/{id}/turn/finishSubmit.
func (h *httpRemoteAdapter) FinishTurnSubmit(ctx context.Context, token, gameID string) (models.Game, error) {
	resp, err := h.gameRequest(ctx, token, gameID).Post("/game/{gameID}/turn/finishSubmit")
	if err != nil {
		return models.Game{}, fmt.Errorf("finish turn submit request: %w", err)
	}
	return h.decodeGame(resp, "finish submit")
}

// JoinGame implements [RemoteAdapter]: POST /game/{id}/join.
func (h *httpRemoteAdapter) JoinGame(ctx context.Context, token, gameID, password string) (models.Game, error) {
	resp, err := h.gameRequest(ctx, token, gameID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.JoinGameRequest{Password: password}).
		Post("/game/{gameID}/join")
	if err != nil {
		return models.Game{}, fmt.Errorf("join game request: %w", err)
	}
	return h.decodeGame(resp, "join game")
}

// LeaveGame implements [RemoteAdapter]: POST /game/{id}/leave.
func (h *httpRemoteAdapter) LeaveGame(ctx context.Context, token, gameID string) (models.Game, error) {
	resp, err := h.gameRequest(ctx, token, gameID).Post("/game/{gameID}/leave")
	if err != nil {
		return models.Game{}, fmt.Errorf("leave game request: %w", err)
	}
	return h.decodeGame(resp, "leave game")
}

// DownloadSave implements [RemoteAdapter]. The response body is handed to the
// caller unread.
func (h *httpRemoteAdapter) DownloadSave(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	resp, err := h.blobs.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "*/*").
		Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("download save request: %w", err)
	}
	if err = mapRawHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("url", redactURL(rawURL)).
		Int64("size", resp.RawResponse.ContentLength).
		Msg("save download started")

	return resp.RawBody(), nil
}

// UploadSave implements [RemoteAdapter].
func (h *httpRemoteAdapter) UploadSave(ctx context.Context, putURL string, gzipped []byte) error {
	resp, err := h.blobs.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("Content-Encoding", "gzip").
		SetBody(bytes.NewReader(gzipped)).
		Put(putURL)
	if err != nil {
		return fmt.Errorf("upload save request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("url", redactURL(putURL)).
		Int("size", len(gzipped)).
		Msg("save uploaded")

	return nil
}

func (h *httpRemoteAdapter) decodeGame(resp *resty.Response, op string) (models.Game, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Game{}, err
	}

	var game models.Game
	if err := decode(resp, op, &game); err != nil {
		return models.Game{}, err
	}

	return game, nil
}

// authedRequest attaches the raw token. PYDT does not use a Bearer prefix.
func (h *httpRemoteAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	return h.api.R().
		SetContext(ctx).
		SetHeader("Authorization", token)
}

func (h *httpRemoteAdapter) gameRequest(ctx context.Context, token, gameID string) *resty.Request {
	return h.authedRequest(ctx, token).SetPathParam("gameID", gameID)
}

func decode(resp *resty.Response, op string, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}
