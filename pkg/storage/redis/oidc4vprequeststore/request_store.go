/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package oidc4vprequeststore caches presentation requests with a fixed
// write-time expiry. Polling a request does not keep it alive.
package oidc4vprequeststore

import (
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/provenid/vcbroker/pkg/service/oidc4vp"
	"github.com/provenid/vcbroker/pkg/storage/redis"
)

const keyPrefix = "oidc4vp_request"

// Store stores presentation requests in redis.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// New creates presentation request Store.
func New(redisClient *redis.Client, ttlSec int32) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         time.Duration(ttlSec) * time.Second,
	}
}

// Create caches the request under its id, overwriting a prior
// unconsumed request for the same id.
func (s *Store) Create(request *oidc4vp.PresentationRequest) error {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout()
	defer cancel()

	doc := &requestDocument{
		Request:  request,
		ExpireAt: time.Now().Add(s.ttl),
	}

	key := resolveRedisKey(request.ID)

	if err := s.redisClient.API().Set(ctxWithTimeout, key, doc, s.ttl).Err(); err != nil {
		return fmt.Errorf("request set: %w", err)
	}

	return nil
}

// GetAndDelete consumes the request: the entry is removed before it is
// returned, so at most one caller observes it.
func (s *Store) GetAndDelete(id oidc4vp.TxID) (*oidc4vp.PresentationRequest, bool, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout()
	defer cancel()

	key := resolveRedisKey(id)
	clientAPI := s.redisClient.API()

	b, err := clientAPI.GetDel(ctxWithTimeout, key).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("request find failed: %w", err)
	}

	doc := &requestDocument{}
	if err = doc.UnmarshalBinary(b); err != nil {
		return nil, false, fmt.Errorf("request decode failed: %w", err)
	}

	if doc.ExpireAt.Before(time.Now().UTC()) {
		return nil, false, nil
	}

	return doc.Request, true, nil
}

func resolveRedisKey(id oidc4vp.TxID) string {
	return fmt.Sprintf("%s-%s", keyPrefix, id)
}
