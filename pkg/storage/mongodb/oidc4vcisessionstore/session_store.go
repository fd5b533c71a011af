/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package oidc4vcisessionstore persists issuance sessions in mongo. Session
// expiry slides forward on every read: Get refreshes the expireAt field the
// TTL index evicts on.
package oidc4vcisessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/provenid/vcbroker/pkg/service/oidc4vci"
	"github.com/provenid/vcbroker/pkg/storage/mongodb"
)

const collectionName = "oidc4vcisessionstore"

type mongoDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	SessionID string             `bson:"sessionId"`
	ExpireAt  time.Time          `bson:"expireAt"`
	Session   *oidc4vci.Session  `bson:"session"`
}

// Store stores issuance sessions in mongo with an access-time TTL.
type Store struct {
	mongoClient *mongodb.Client
	ttl         time.Duration
}

// New creates Store and ensures its indexes.
func New(ctx context.Context, mongoClient *mongodb.Client, ttlSec int32) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
		ttl:         time.Duration(ttlSec) * time.Second,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.mongoClient.Database().Collection(collectionName).Indexes().
		CreateMany(ctx, []mongo.IndexModel{
			{
				Keys: map[string]interface{}{
					"sessionId": -1,
				},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: map[string]interface{}{
					"expireAt": 1,
				},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}

	return nil
}

// Put upserts the session. Last write wins per session id.
func (s *Store) Put(session *oidc4vci.Session) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	doc := &mongoDocument{
		SessionID: string(session.ID),
		ExpireAt:  time.Now().UTC().Add(s.ttl),
		Session:   session,
	}

	collection := s.mongoClient.Database().Collection(collectionName)

	_, err := collection.ReplaceOne(ctxWithTimeout,
		bson.M{"sessionId": doc.SessionID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("session replace: %w", err)
	}

	return nil
}

// Get returns the session and slides its expiry forward.
func (s *Store) Get(id oidc4vci.SessionID) (*oidc4vci.Session, bool, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	collection := s.mongoClient.Database().Collection(collectionName)

	var doc mongoDocument

	err := collection.FindOneAndUpdate(ctxWithTimeout,
		bson.M{"sessionId": string(id)},
		bson.M{"$set": bson.M{"expireAt": time.Now().UTC().Add(s.ttl)}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&doc)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("session find: %w", err)
	}

	// The TTL monitor runs on a delay, an expired document may still be
	// returned by the query. The $set above resurrected it, so remove it.
	if doc.ExpireAt.Before(time.Now().UTC()) {
		return nil, false, s.Delete(id)
	}

	return doc.Session, true, nil
}

// Delete removes the session.
func (s *Store) Delete(id oidc4vci.SessionID) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	collection := s.mongoClient.Database().Collection(collectionName)

	_, err := collection.DeleteOne(ctxWithTimeout, bson.M{"sessionId": string(id)})
	if err != nil {
		return fmt.Errorf("session delete: %w", err)
	}

	return nil
}
