/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuedcredentialstore persists issued credentials per user.
package issuedcredentialstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/provenid/vcbroker/pkg/storage/mongodb"
	"github.com/provenid/vcbroker/pkg/userctx"
)

const (
	collectionName        = "issuedcredentials"
	userIDFieldName       = "userId"
	credentialIDFieldName = "credentialId"
	credentialFieldName   = "credential"
)

// ErrDataNotFound is returned when a credential is absent.
var ErrDataNotFound = errors.New("data not found")

// Store manages issued credentials in mongodb, partitioned by the user
// bound to the calling context.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates Store.
func New(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Store upserts a credential under the context's user. It fails outside a
// user scope.
func (s *Store) Store(ctx context.Context, id string, credential json.RawMessage) error {
	userID, err := userctx.User(ctx)
	if err != nil {
		return err
	}

	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	collection := s.mongoClient.Database().Collection(collectionName)

	_, err = collection.ReplaceOne(ctxWithTimeout,
		bson.D{
			{Key: userIDFieldName, Value: userID},
			{Key: credentialIDFieldName, Value: id},
		},
		bson.D{
			{Key: userIDFieldName, Value: userID},
			{Key: credentialIDFieldName, Value: id},
			{Key: credentialFieldName, Value: string(credential)},
		},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("credential replace: %w", err)
	}

	return nil
}

// Get returns a credential by id for the context's user.
func (s *Store) Get(ctx context.Context, id string) (json.RawMessage, error) {
	userID, err := userctx.User(ctx)
	if err != nil {
		return nil, err
	}

	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	collection := s.mongoClient.Database().Collection(collectionName)

	var doc bson.M

	err = collection.FindOne(ctxWithTimeout, bson.D{
		{Key: userIDFieldName, Value: userID},
		{Key: credentialIDFieldName, Value: id},
	}).Decode(&doc)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("credential find: %w", err)
	}

	credential, ok := doc[credentialFieldName].(string)
	if !ok {
		return nil, fmt.Errorf("credential %q has no payload", id)
	}

	return json.RawMessage(credential), nil
}
