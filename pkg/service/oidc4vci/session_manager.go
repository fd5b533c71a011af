/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

//go:generate mockgen -destination session_manager_mocks_test.go -self_package mocks -package oidc4vci_test -source=session_manager.go -mock_names sessionStore=MockSessionStore

const sessionIDSize = 10

// sessionStore persists issuance sessions. Get refreshes the entry's TTL so
// an active flow stays resumable; a session left untouched expires.
type sessionStore interface {
	Put(session *Session) error
	Get(id SessionID) (*Session, bool, error)
}

// SessionManager creates and tracks issuance sessions.
type SessionManager struct {
	store sessionStore
}

// NewSessionManager creates a SessionManager.
func NewSessionManager(store sessionStore) *SessionManager {
	return &SessionManager{store: store}
}

// CreateSession assigns an id and nonce to the session and persists it.
func (m *SessionManager) CreateSession(session *Session) (*Session, error) {
	id, err := genOpaqueID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	nonce, err := genOpaqueID()
	if err != nil {
		return nil, fmt.Errorf("generate session nonce: %w", err)
	}

	session.ID = SessionID(id)
	session.Nonce = nonce
	session.State = SessionStateInitiated
	session.Created = time.Now().UTC()

	if err = m.store.Put(session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return session, nil
}

// GetSession returns the session or ErrSessionNotFound when it is absent or
// expired.
func (m *SessionManager) GetSession(id SessionID) (*Session, error) {
	session, exists, err := m.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if !exists {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// UpdateSession overwrites the stored session. Writes are last-write-wins
// per session id.
func (m *SessionManager) UpdateSession(session *Session) error {
	if session.ID == "" {
		return fmt.Errorf("missing session id")
	}

	if err := m.store.Put(session); err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	return nil
}

func genOpaqueID() (string, error) {
	b := make([]byte, sessionIDSize)

	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.URLEncoding.EncodeToString(b), nil
}
