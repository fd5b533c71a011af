/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package oidc4vpresultstore caches verification results with a fixed
// write-time expiry. A result is redeemable at most once.
package oidc4vpresultstore

import (
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/provenid/vcbroker/pkg/service/oidc4vp"
	"github.com/provenid/vcbroker/pkg/storage/redis"
)

const keyPrefix = "oidc4vp_result"

// Store stores verification results in redis.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// New creates verification result Store.
func New(redisClient *redis.Client, ttlSec int32) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         time.Duration(ttlSec) * time.Second,
	}
}

// Put caches the result under its id.
func (s *Store) Put(result *oidc4vp.VerificationResult) error {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout()
	defer cancel()

	doc := &resultDocument{
		Result:   result,
		ExpireAt: time.Now().Add(s.ttl),
	}

	key := resolveRedisKey(result.ID)

	if err := s.redisClient.API().Set(ctxWithTimeout, key, doc, s.ttl).Err(); err != nil {
		return fmt.Errorf("result set: %w", err)
	}

	return nil
}

// GetAndDelete redeems the result: the entry is removed before it is
// returned, so a second redeem observes absence.
func (s *Store) GetAndDelete(id oidc4vp.TxID) (*oidc4vp.VerificationResult, bool, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout()
	defer cancel()

	key := resolveRedisKey(id)

	b, err := s.redisClient.API().GetDel(ctxWithTimeout, key).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("result find failed: %w", err)
	}

	doc := &resultDocument{}
	if err = doc.UnmarshalBinary(b); err != nil {
		return nil, false, fmt.Errorf("result decode failed: %w", err)
	}

	if doc.ExpireAt.Before(time.Now().UTC()) {
		return nil, false, nil
	}

	return doc.Result, true, nil
}

func resolveRedisKey(id oidc4vp.TxID) string {
	return fmt.Sprintf("%s-%s", keyPrefix, id)
}
