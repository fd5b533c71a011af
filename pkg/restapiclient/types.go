/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package restapiclient

import (
	"encoding/json"
	"time"
)

type InitiateVerificationRequest struct {
	ClaimSpec    json.RawMessage `json:"claimSpec,omitempty"`
	State        string          `json:"state,omitempty"`
	ResponseMode string          `json:"responseMode,omitempty"`
	WebhookURL   string          `json:"webhookUrl,omitempty"`
}

type InitiateVerificationResponse struct {
	AuthorizationRequest string `json:"authorizationRequest"`
	TxID                 string `json:"txID"`
}

type PolicyCheckResult struct {
	Check string `json:"check"`
	Error string `json:"error,omitempty"`
}

type VerificationResult struct {
	ID            string              `json:"id"`
	SubjectDID    string              `json:"subjectDid,omitempty"`
	Valid         bool                `json:"valid"`
	Presentation  json.RawMessage     `json:"presentation,omitempty"`
	PolicyResults []PolicyCheckResult `json:"policyResults,omitempty"`
	Created       time.Time           `json:"created"`
}

type InitiateIssuanceRequest struct {
	IssuerURI       string   `json:"issuerUri"`
	CredentialTypes []string `json:"credentialTypes"`
	PreAuthorized   bool     `json:"preAuthorized"`
	UserPinRequired bool     `json:"userPinRequired"`
}

type InitiateIssuanceResponse struct {
	OfferURL  string `json:"offerUrl"`
	SessionID string `json:"sessionId"`
	UserPin   string `json:"userPin,omitempty"`
}

type ContinueIssuanceRequest struct {
	SubjectDID string `json:"subjectDid"`
	UserID     string `json:"userId"`
	Pin        string `json:"pin,omitempty"`
}

type AuthorizeIssuanceResponse struct {
	RedirectURI string `json:"redirectUri"`
}

type FinalizeIssuanceRequest struct {
	Code string `json:"code"`
	Pin  string `json:"pin,omitempty"`
}

type IssuedCredential struct {
	ID         string          `json:"id"`
	Types      []string        `json:"types"`
	Format     string          `json:"format"`
	Credential json.RawMessage `json:"credential"`
}

type Session struct {
	ID              string              `json:"id"`
	State           int16               `json:"state"`
	IssuerURI       string              `json:"issuerUri"`
	CredentialTypes []string            `json:"credentialTypes"`
	PreAuthorized   bool                `json:"preAuthorized"`
	SubjectDID      string              `json:"subjectDid,omitempty"`
	UserID          string              `json:"userId,omitempty"`
	Credentials     []*IssuedCredential `json:"credentials,omitempty"`
	Created         time.Time           `json:"created"`
}
