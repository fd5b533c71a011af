/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package userctx scopes units of work to a single user. Credential storage
// and proof signing run inside such a scope, never on an ambient context.
package userctx

import (
	"context"
	"errors"
)

type contextKey struct{}

// ErrNoUser is returned when a user-scoped operation runs outside a scope.
var ErrNoUser = errors.New("no user bound to context")

// WithUser derives a context bound to userID.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// User returns the user the context is bound to.
func User(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextKey{}).(string)
	if !ok || userID == "" {
		return "", ErrNoUser
	}

	return userID, nil
}

// Scope runs work under a user-bound context.
type Scope struct{}

// NewScope creates Scope.
func NewScope() *Scope {
	return &Scope{}
}

// RunWith invokes fn with a context bound to userID.
func (s *Scope) RunWith(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	if userID == "" {
		return ErrNoUser
	}

	return fn(WithUser(ctx, userID))
}
