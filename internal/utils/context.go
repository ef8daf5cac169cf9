// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, the resty HTTP
// client factory, identifier generation and file name sanitizing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CycleIDCtxKey is the key used to store the poll cycle identifier in the
// context. Log lines and adapter calls made during one poll cycle carry it.
var CycleIDCtxKey = contextKey("cycleID")

// WithCycleID returns a copy of ctx carrying the poll cycle identifier.
func WithCycleID(ctx context.Context, cycleID string) context.Context {
	return context.WithValue(ctx, CycleIDCtxKey, cycleID)
}

// GetCycleIDFromContext retrieves the poll cycle identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true:  value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetCycleIDFromContext(ctx context.Context) (string, bool) {
	cycleID, ok := ctx.Value(CycleIDCtxKey).(string)
	return cycleID, ok && cycleID != ""
}
