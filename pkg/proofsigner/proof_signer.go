/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package proofsigner signs JWT proofs of possession for credential
// requests. The broker holds one Ed25519 holder binding key; the subject
// DID the proof speaks for is carried in the claims.
package proofsigner

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/hyperledger/aries-framework-go/pkg/doc/jose"
	"github.com/hyperledger/aries-framework-go/pkg/doc/jwt"
)

const signingAlgorithm = "EdDSA"

// Signer signs proof JWTs with a local Ed25519 key.
type Signer struct {
	keyID      string
	privateKey ed25519.PrivateKey
}

// New creates Signer. keyID is either an absolute verification method id or
// a key fragment resolved against the subject DID at signing time.
func New(keyID string, privateKey ed25519.PrivateKey) *Signer {
	return &Signer{
		keyID:      keyID,
		privateKey: privateKey,
	}
}

// Sign serializes a signed JWT over claims with the given headers.
func (s *Signer) Sign(
	_ context.Context,
	subjectDID string,
	claims interface{},
	headers map[string]interface{},
) (string, error) {
	token, err := jwt.NewSigned(claims, jose.Headers(headers), &jwsSigner{
		keyID:      s.resolveKeyID(subjectDID),
		privateKey: s.privateKey,
	})
	if err != nil {
		return "", fmt.Errorf("sign proof: %w", err)
	}

	serialized, err := token.Serialize(false)
	if err != nil {
		return "", fmt.Errorf("serialize proof: %w", err)
	}

	return serialized, nil
}

func (s *Signer) resolveKeyID(subjectDID string) string {
	if strings.HasPrefix(s.keyID, "did:") || subjectDID == "" {
		return s.keyID
	}

	return subjectDID + "#" + s.keyID
}

type jwsSigner struct {
	keyID      string
	privateKey ed25519.PrivateKey
}

func (s *jwsSigner) Sign(data []byte) ([]byte, error) {
	return ed25519.Sign(s.privateKey, data), nil
}

// Headers provides JWS headers. "alg" header must be provided (see https://tools.ietf.org/html/rfc7515#section-4.1)
func (s *jwsSigner) Headers() jose.Headers {
	return jose.Headers{
		jose.HeaderKeyID:     s.keyID,
		jose.HeaderAlgorithm: signingAlgorithm,
	}
}
