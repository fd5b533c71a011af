/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vp

import (
	"encoding/json"
	"errors"
	"time"

	vcsverifiable "github.com/provenid/vcbroker/pkg/doc/verifiable"
	"github.com/provenid/vcbroker/pkg/service/verifypresentation"
)

// TxID is an opaque identifier shared by a presentation request, its
// authorization response and its verification result. It doubles as
// the protocol "state" value.
type TxID string

var ErrDataNotFound = errors.New("data not found")

// Response modes supported for the wallet authorization response.
const (
	ResponseModeFormPost  = "form_post"
	ResponseModeOutOfBand = "out_of_band"
)

// PresentationRequest is a cached SIOPv2/OIDC4VP authorization request
// awaiting exactly one wallet response.
type PresentationRequest struct {
	ID           TxID                     `json:"id"`
	Nonce        string                   `json:"nonce"`
	ClaimSpec    *vcsverifiable.ClaimSpec `json:"claimSpec,omitempty"`
	RedirectURI  string                   `json:"redirectUri"`
	ResponseMode string                   `json:"responseMode"`
	WebhookURL   string                   `json:"webhookUrl,omitempty"`
	Created      time.Time                `json:"created"`
}

// VerificationResult is the outcome of verifying a wallet authorization
// response. A valid result carries a one-time bearer token redeemable
// exactly once through the complete-authentication read path.
type VerificationResult struct {
	ID            TxID                                   `json:"id"`
	SubjectDID    string                                 `json:"subjectDid"`
	Valid         bool                                   `json:"valid"`
	Presentation  json.RawMessage                        `json:"presentation,omitempty"`
	AccessToken   string                                 `json:"accessToken,omitempty"`
	PolicyResults []verifypresentation.PolicyCheckResult `json:"policyResults,omitempty"`
	WebhookURL    string                                 `json:"webhookUrl,omitempty"`
	Created       time.Time                              `json:"created"`
}

// AuthorizationResponse is the decoded form body posted by the wallet.
type AuthorizationResponse struct {
	State   string
	IDToken string
	VPToken string
}

// InitiateRequest describes a verifier "present" call.
type InitiateRequest struct {
	ClaimSpec    *vcsverifiable.ClaimSpec
	State        string
	ResponseMode string
	WebhookURL   string
}
