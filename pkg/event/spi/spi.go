/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package spi defines the event model shared by publishers and consumers.
package spi

import (
	"encoding/json"
	"time"
)

// EventType defines event type.
type EventType string

const (
	// VerifierOIDCInteractionInitiated is sent when a presentation request is created.
	VerifierOIDCInteractionInitiated = EventType("verifier.oidc-interaction-initiated.v1")
	// VerifierOIDCInteractionSucceeded is sent when an authorization response passed all policies.
	VerifierOIDCInteractionSucceeded = EventType("verifier.oidc-interaction-succeeded.v1")
	// VerifierOIDCInteractionFailed is sent when an authorization response failed at least one policy.
	VerifierOIDCInteractionFailed = EventType("verifier.oidc-interaction-failed.v1")
	// VerifierOIDCInteractionClaimsRetrieved is sent when a verification result is redeemed.
	VerifierOIDCInteractionClaimsRetrieved = EventType("verifier.oidc-interaction-claims-retrieved.v1")

	// IssuerOIDCInteractionInitiated is sent when an issuance session is created.
	IssuerOIDCInteractionInitiated = EventType("issuer.oidc-interaction-initiated.v1")
	// IssuerOIDCInteractionAuthorizationRequestPrepared is sent after a successful pushed authorization request.
	IssuerOIDCInteractionAuthorizationRequestPrepared = EventType("issuer.oidc-interaction-ar-prepared.v1")
	// IssuerOIDCInteractionSucceeded is sent when a credential is issued into the session.
	IssuerOIDCInteractionSucceeded = EventType("issuer.oidc-interaction-succeeded.v1")
	// IssuerOIDCInteractionFailed is sent when issuance fails after authorization started.
	IssuerOIDCInteractionFailed = EventType("issuer.oidc-interaction-failed.v1")
)

// Payload defines payload.
type Payload []byte

// Event defines event.
type Event struct {
	// SpecVersion is spec version(required).
	SpecVersion string `json:"specversion"`

	// ID identifies the event(required).
	ID string `json:"id"`

	// Source is URI for producer(required).
	Source string `json:"source"`

	// Type defines event type(required).
	Type EventType `json:"type"`

	// Time defines time of occurrence(required).
	Time time.Time `json:"time"`

	// DataContentType is data content type(optional).
	DataContentType string `json:"datacontenttype,omitempty"`

	// Data defines message(optional).
	Data interface{} `json:"data,omitempty"`

	// TransactionID defines transaction ID(optional).
	TransactionID string `json:"txnid,omitempty"`
}

// Copy an event.
func (m *Event) Copy() *Event {
	return &Event{
		SpecVersion:     m.SpecVersion,
		ID:              m.ID,
		Source:          m.Source,
		Type:            m.Type,
		Time:            m.Time,
		DataContentType: m.DataContentType,
		Data:            m.Data,
		TransactionID:   m.TransactionID,
	}
}

// NewEventWithPayload creates a new Event with payload.
func NewEventWithPayload(uuid string, source string, eventType EventType, payload Payload) *Event {
	event := NewEvent(uuid, source, eventType)

	m := map[string]interface{}{}
	if err := json.Unmarshal(payload, &m); err == nil {
		event.Data = m
	} else {
		event.Data = string(payload)
	}

	event.DataContentType = "application/json"

	return event
}

// NewEvent creates a new Event without payload.
func NewEvent(uuid string, source string, eventType EventType) *Event {
	return &Event{
		SpecVersion: "1.0",
		ID:          uuid,
		Source:      source,
		Type:        eventType,
		Time:        time.Now(),
	}
}
