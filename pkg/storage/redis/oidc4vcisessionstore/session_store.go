/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package oidc4vcisessionstore caches issuance sessions with an access-time
// expiry: every successful Get pushes the expiry forward, so an active flow
// stays resumable while an abandoned one ages out.
package oidc4vcisessionstore

import (
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/provenid/vcbroker/pkg/service/oidc4vci"
	"github.com/provenid/vcbroker/pkg/storage/redis"
)

const keyPrefix = "oidc4vci_session"

// Store stores issuance sessions in redis.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// New creates issuance session Store.
func New(redisClient *redis.Client, ttlSec int32) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         time.Duration(ttlSec) * time.Second,
	}
}

// Put caches the session under its id. Writes are last-write-wins and reset
// the expiry.
func (s *Store) Put(session *oidc4vci.Session) error {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout()
	defer cancel()

	doc := &sessionDocument{
		Session: session,
	}

	key := resolveRedisKey(session.ID)

	if err := s.redisClient.API().Set(ctxWithTimeout, key, doc, s.ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}

	return nil
}

// Get returns the session and slides its expiry forward. GETEX resets the
// key TTL atomically, so a read never writes the value back and cannot
// clobber a concurrent Put.
func (s *Store) Get(id oidc4vci.SessionID) (*oidc4vci.Session, bool, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout()
	defer cancel()

	b, err := s.redisClient.API().GetEx(ctxWithTimeout, resolveRedisKey(id), s.ttl).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("session find failed: %w", err)
	}

	doc := &sessionDocument{}
	if err = doc.UnmarshalBinary(b); err != nil {
		return nil, false, fmt.Errorf("session decode failed: %w", err)
	}

	return doc.Session, true, nil
}

func resolveRedisKey(id oidc4vci.SessionID) string {
	return fmt.Sprintf("%s-%s", keyPrefix, id)
}
