// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. [*HTTPError] unwraps to exactly one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrDecodeResponse is the target of every [*DecodeError].
	ErrDecodeResponse = errors.New("decode response")
	// ErrMalformedResponse reports a well-formed JSON body that misses a
	// field the caller depends on.
	ErrMalformedResponse = errors.New("malformed response")
)

// HTTPError describes a non-2xx response.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	// Body is the message field of a JSON error body, or the trimmed raw
	// body otherwise.
	Body string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: http %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: http %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

func (e *HTTPError) Unwrap() error {
	return statusSentinel(e.StatusCode)
}

// DecodeError wraps a JSON decoding failure of a response body.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecodeResponse, e.Err}
}
