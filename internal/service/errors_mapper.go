// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pydt-client/internal/adapter"
)

// mapGameError translates the adapter's transport error of a join or leave
// call into a service business error carrying the server message.
func mapGameError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	case errors.Is(err, adapter.ErrNotFound):
		return ErrGameNotFound
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrConflict):
		if msg == "" {
			return ErrGameRejected
		}
		return fmt.Errorf("%w: %s", ErrGameRejected, msg)
	default:
		return err
	}
}

// extractBody returns the server message of an [*adapter.HTTPError].
func extractBody(err error) string {
	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Body
	}
	return ""
}
