/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"encoding/json"
	"errors"
	"time"

	vcsverifiable "github.com/provenid/vcbroker/pkg/doc/verifiable"
)

// SessionID is the opaque identifier of an issuance session.
type SessionID string

// SessionState is the state of an issuance session.
type SessionState int16

const (
	// SessionStateUnknown is an invalid state.
	SessionStateUnknown SessionState = 0
	// SessionStateInitiated is the state of a freshly created session.
	SessionStateInitiated SessionState = 1
	// SessionStateAuthorizationRequested is the state after a successful
	// pushed authorization request.
	SessionStateAuthorizationRequested SessionState = 2
	// SessionStateAuthorized is the state after the issuer granted the
	// authorization code.
	SessionStateAuthorized SessionState = 3
	// SessionStateTokenIssued is the state after a successful token exchange.
	SessionStateTokenIssued SessionState = 4
	// SessionStateCredentialIssued is the terminal state: credentials were
	// fetched and stored.
	SessionStateCredentialIssued SessionState = 5
)

var (
	// ErrSessionNotFound is returned when the session is absent or expired.
	ErrSessionNotFound = errors.New("issuance session not found or expired")

	// ErrWrongFlow is returned when an issuer-initiated operation is invoked
	// on a session that was not issuer-initiated.
	ErrWrongFlow = errors.New("session was not issuer initiated")

	// ErrUserNotConfirmed is returned when finalize is attempted before a
	// user is bound to the session.
	ErrUserNotConfirmed = errors.New("no user bound to session")

	// ErrSubjectAlreadyBound is returned when a continue attempt tries to
	// rebind a session to a different subject DID or user.
	ErrSubjectAlreadyBound = errors.New("session already bound to another subject")

	// ErrNoSubjectBound is returned when finalize is attempted before a
	// subject DID is bound to the session.
	ErrNoSubjectBound = errors.New("no subject DID bound to session")

	// ErrIssuerUnreachable is returned when issuer metadata or the issuer
	// credential endpoint cannot be reached.
	ErrIssuerUnreachable = errors.New("issuer unreachable")

	// ErrAuthorizationRejected is returned when the issuer declines the
	// pushed authorization request.
	ErrAuthorizationRejected = errors.New("authorization rejected by issuer")
)

// TokenSet holds the tokens obtained from the issuer's token endpoint.
type TokenSet struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ObtainedAt   time.Time `json:"obtainedAt"`
}

// IssuedCredential is one credential fetched from the issuer's credential
// endpoint during finalize.
type IssuedCredential struct {
	ID         string               `json:"id"`
	Types      []string             `json:"types"`
	Format     vcsverifiable.Format `json:"format"`
	Credential json.RawMessage      `json:"credential"`
}

// Session is the state of one issuance flow, kept in the session store
// between protocol steps.
type Session struct {
	ID                SessionID           `json:"id"`
	State             SessionState        `json:"state"`
	IssuerURI         string              `json:"issuerUri"`
	CredentialTypes   []string            `json:"credentialTypes"`
	IssuerInitiated   bool                `json:"issuerInitiated"`
	PreAuthorized     bool                `json:"preAuthorized"`
	PreAuthorizedCode string              `json:"preAuthorizedCode,omitempty"`
	UserPinRequired   bool                `json:"userPinRequired"`
	UserPin           string              `json:"userPin,omitempty"`
	Nonce             string              `json:"nonce"`
	CNonce            string              `json:"cNonce,omitempty"`
	CodeVerifier      string              `json:"codeVerifier,omitempty"`
	SubjectDID        string              `json:"subjectDid,omitempty"`
	UserID            string              `json:"userId,omitempty"`
	Tokens            *TokenSet           `json:"tokens,omitempty"`
	Credentials       []*IssuedCredential `json:"credentials,omitempty"`
	Created           time.Time           `json:"created"`
}

// InitiationRequest is the issuer-initiated entry point: an offer the wallet
// can resolve into a session.
type InitiationRequest struct {
	IssuerURI         string   `json:"issuerUri"`
	CredentialTypes   []string `json:"credentialTypes"`
	PreAuthorizedCode string   `json:"preAuthorizedCode,omitempty"`
	UserPinRequired   bool     `json:"userPinRequired"`
	UserPin           string   `json:"userPin,omitempty"`
	OfferURL          string   `json:"offerUrl"`
}

// InitiateIssuanceRequest describes what the issuer wants to offer.
type InitiateIssuanceRequest struct {
	IssuerURI       string
	CredentialTypes []string
	UserPinRequired bool
}

// WalletInitiatedIssuanceRequest starts an issuance session from the wallet
// side, without an issuer offer. The subject is bound from the start.
type WalletInitiatedIssuanceRequest struct {
	IssuerURI       string   `json:"issuerUri"`
	CredentialTypes []string `json:"credentialTypes"`
	SubjectDID      string   `json:"subjectDid"`
	UserID          string   `json:"userId"`
}

// TokenResponse is the issuer token endpoint response.
type TokenResponse struct {
	AccessToken  string
	RefreshToken string
	CNonce       string
}

// AuthorizationDetails is one openid_credential entry of a pushed
// authorization request.
type AuthorizationDetails struct {
	Type           string               `json:"type"`
	CredentialType string               `json:"credential_type"`
	Format         vcsverifiable.Format `json:"format,omitempty"`
}

// PushedAuthorizationRequest carries the session's correlation state and
// challenge to the issuer's PAR endpoint.
type PushedAuthorizationRequest struct {
	State                string
	Challenge            string
	AuthorizationDetails []*AuthorizationDetails
}

// PushedAuthorizationResponse is the outcome of a pushed authorization
// request: the authorize redirect URI and the PKCE verifier matching the
// challenge that was pushed.
type PushedAuthorizationResponse struct {
	AuthorizationURL string
	CodeVerifier     string
}

// TokenRequest is a token exchange request against the issuer's token
// endpoint. PreAuthorized selects the pre-authorized-code grant.
type TokenRequest struct {
	Code          string
	PreAuthorized bool
	UserPin       string
	CodeVerifier  string
}

// CredentialEndpointRequest asks the issuer's credential endpoint for one
// credential of the given type with a holder proof of possession.
type CredentialEndpointRequest struct {
	AccessToken    string
	CredentialType string
	Format         vcsverifiable.Format
	Proof          string
}
