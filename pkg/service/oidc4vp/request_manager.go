/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination request_manager_mocks_test.go -self_package mocks -package oidc4vp_test -source=request_manager.go -mock_names requestStore=MockRequestStore,resultStore=MockResultStore

package oidc4vp

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	vcsverifiable "github.com/provenid/vcbroker/pkg/doc/verifiable"
)

const nonceSize = 10

type requestStore interface {
	Create(request *PresentationRequest) error
	GetAndDelete(id TxID) (*PresentationRequest, bool, error)
}

type resultStore interface {
	Put(result *VerificationResult) error
	GetAndDelete(id TxID) (*VerificationResult, bool, error)
}

// RequestManager owns the presentation request and verification result
// cache slots. Both are write-expiry entries consumed at most once.
type RequestManager struct {
	requestStore requestStore
	resultStore  resultStore
}

// NewRequestManager creates RequestManager.
func NewRequestManager(requests requestStore, results resultStore) *RequestManager {
	return &RequestManager{
		requestStore: requests,
		resultStore:  results,
	}
}

// CreateRequest generates a nonce, derives the request id from the
// caller-supplied state or the nonce itself, and caches the request.
// A repeated caller-supplied state overwrites a prior unconsumed
// request for that id.
func (m *RequestManager) CreateRequest(
	claimSpec *vcsverifiable.ClaimSpec,
	state, redirectURI, responseMode, webhookURL string,
) (*PresentationRequest, error) {
	nonce, err := genNonce()
	if err != nil {
		return nil, err
	}

	id := state
	if id == "" {
		id = nonce
	}

	request := &PresentationRequest{
		ID:           TxID(id),
		Nonce:        nonce,
		ClaimSpec:    claimSpec,
		RedirectURI:  redirectURI,
		ResponseMode: responseMode,
		WebhookURL:   webhookURL,
		Created:      time.Now().UTC(),
	}

	if err = m.requestStore.Create(request); err != nil {
		return nil, fmt.Errorf("request store create: %w", err)
	}

	return request, nil
}

// ConsumeRequest looks up and immediately invalidates the cached request,
// so a retried or duplicated response can never re-validate.
func (m *RequestManager) ConsumeRequest(id TxID) (*PresentationRequest, error) {
	request, found, err := m.requestStore.GetAndDelete(id)
	if err != nil {
		return nil, fmt.Errorf("request store get: %w", err)
	}

	if !found {
		return nil, ErrDataNotFound
	}

	return request, nil
}

// StoreResult caches a verification result under its request id.
func (m *RequestManager) StoreResult(result *VerificationResult) error {
	if result.ID == "" {
		return errors.New("result id is empty")
	}

	if err := m.resultStore.Put(result); err != nil {
		return fmt.Errorf("result store put: %w", err)
	}

	return nil
}

// ConsumeResult redeems a verification result exactly once. The entry is
// invalidated on read regardless of outcome.
func (m *RequestManager) ConsumeResult(id TxID) (*VerificationResult, error) {
	result, found, err := m.resultStore.GetAndDelete(id)
	if err != nil {
		return nil, fmt.Errorf("result store get: %w", err)
	}

	if !found {
		return nil, ErrDataNotFound
	}

	return result, nil
}

func genNonce() (string, error) {
	nonceBytes := make([]byte, nonceSize)

	_, err := rand.Read(nonceBytes)
	if err != nil {
		return "", fmt.Errorf("nonce generating random failed: %w", err)
	}

	return base64.URLEncoding.EncodeToString(nonceBytes), nil
}
