/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package restapiclient is a typed HTTP client for the vcbroker REST API.
package restapiclient

//go:generate mockgen -destination restapiclient_mocks_test.go -package restapiclient_test -source=restapiclient.go -mock_names httpClient=MockHttpClient

import (
	"context"
	"fmt"
	"net/http"
)

const (
	initiateVerificationEndpoint = "/verifier/interactions/initiate"
	verificationResultEndpoint   = "/verifier/interactions/%s/result"
	initiateIssuanceEndpoint     = "/issuer/interactions/initiate-issuance"
	continueIssuanceEndpoint     = "/issuer/interactions/%s/continue"
	authorizeIssuanceEndpoint    = "/issuer/interactions/%s/authorize"
	finalizeIssuanceEndpoint     = "/issuer/interactions/%s/finalize"
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	hostURI string
	apiKey  string
	client  httpClient
}

// NewClient creates a vcbroker API client. The apiKey is sent in the
// X-API-Key header on every call.
func NewClient(
	hostURI string,
	apiKey string,
	client httpClient,
) *Client {
	return &Client{
		hostURI: hostURI,
		apiKey:  apiKey,
		client:  client,
	}
}

// InitiateVerification creates a presentation request the wallet can
// answer exactly once.
func (c *Client) InitiateVerification(
	ctx context.Context,
	req *InitiateVerificationRequest,
) (*InitiateVerificationResponse, error) {
	return sendInternal[InitiateVerificationRequest, InitiateVerificationResponse](
		ctx,
		c.client,
		http.MethodPost,
		fmt.Sprintf("%s%s", c.hostURI, initiateVerificationEndpoint),
		c.apiKey,
		req,
	)
}

// GetVerificationResult redeems the verification result for the given
// transaction. The result is consumed by this call.
func (c *Client) GetVerificationResult(
	ctx context.Context,
	txID string,
) (*VerificationResult, error) {
	return sendInternal[struct{}, VerificationResult](
		ctx,
		c.client,
		http.MethodGet,
		fmt.Sprintf("%s"+verificationResultEndpoint, c.hostURI, txID),
		c.apiKey,
		nil,
	)
}

// InitiateIssuance creates a wallet offer and the issuance session behind it.
func (c *Client) InitiateIssuance(
	ctx context.Context,
	req *InitiateIssuanceRequest,
) (*InitiateIssuanceResponse, error) {
	return sendInternal[InitiateIssuanceRequest, InitiateIssuanceResponse](
		ctx,
		c.client,
		http.MethodPost,
		fmt.Sprintf("%s%s", c.hostURI, initiateIssuanceEndpoint),
		c.apiKey,
		req,
	)
}

// ContinueIssuance binds the subject DID and user to the session.
func (c *Client) ContinueIssuance(
	ctx context.Context,
	sessionID string,
	req *ContinueIssuanceRequest,
) (*Session, error) {
	return sendInternal[ContinueIssuanceRequest, Session](
		ctx,
		c.client,
		http.MethodPost,
		fmt.Sprintf("%s"+continueIssuanceEndpoint, c.hostURI, sessionID),
		c.apiKey,
		req,
	)
}

// AuthorizeIssuance runs the pushed-authorization step and returns the
// issuer's authorize redirect.
func (c *Client) AuthorizeIssuance(
	ctx context.Context,
	sessionID string,
) (*AuthorizeIssuanceResponse, error) {
	return sendInternal[struct{}, AuthorizeIssuanceResponse](
		ctx,
		c.client,
		http.MethodPost,
		fmt.Sprintf("%s"+authorizeIssuanceEndpoint, c.hostURI, sessionID),
		c.apiKey,
		nil,
	)
}

// FinalizeIssuance exchanges the code and fetches the credentials into
// the session.
func (c *Client) FinalizeIssuance(
	ctx context.Context,
	sessionID string,
	req *FinalizeIssuanceRequest,
) (*Session, error) {
	return sendInternal[FinalizeIssuanceRequest, Session](
		ctx,
		c.client,
		http.MethodPost,
		fmt.Sprintf("%s"+finalizeIssuanceEndpoint, c.hostURI, sessionID),
		c.apiKey,
		req,
	)
}
