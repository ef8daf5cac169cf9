// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of a streamed error body is read.
const maxErrorBody = 4 << 10

func mapHTTPError(resp *resty.Response) error {
	if isSuccess(resp.StatusCode()) {
		return nil
	}

	return newHTTPError(resp, resp.Body())
}

// mapRawHTTPError is mapHTTPError for responses fetched with
// SetDoNotParseResponse. On error it drains and closes the raw body.
func mapRawHTTPError(resp *resty.Response) error {
	if isSuccess(resp.StatusCode()) {
		return nil
	}

	var body []byte
	if raw := resp.RawBody(); raw != nil {
		body, _ = io.ReadAll(io.LimitReader(raw, maxErrorBody))
		_ = raw.Close()
	}

	return newHTTPError(resp, body)
}

func newHTTPError(resp *resty.Response, body []byte) *HTTPError {
	e := &HTTPError{StatusCode: resp.StatusCode(), Body: errorMessage(body)}
	if resp.Request != nil {
		e.Method = resp.Request.Method
		e.URL = redactURL(resp.Request.URL)
	}
	if e.Body == "" {
		e.Body = http.StatusText(e.StatusCode)
	}
	return e
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

// errorMessage prefers the message field of a JSON error body.
func errorMessage(body []byte) string {
	var payload struct {
		Message      string `json:"message"`
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.ErrorMessage != "" {
			return payload.ErrorMessage
		}
	}
	return strings.TrimSpace(string(body))
}

// redactURL drops the query string, which carries signatures on presigned
// blob URLs.
func redactURL(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}
	return raw
}
