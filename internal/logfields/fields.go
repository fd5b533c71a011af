/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldCredentialFormat = "credentialFormat"
	FieldCredentialID     = "credentialID"
	FieldCredentialTypes  = "credentialTypes"
	FieldIssuerURI        = "issuerURI"
	FieldPolicy           = "policy"
	FieldPresDefID        = "presDefID"
	FieldSessionID        = "sessionID"
	FieldSleep            = "sleep"
	FieldSubjectDID       = "subjectDID"
	FieldUserID           = "userID"
	FieldUserLogLevel     = "userLogLevel"
	FieldWebhookURL       = "webhookURL"
)

// WithCredentialFormat sets the credential format field.
func WithCredentialFormat(format string) zap.Field {
	return zap.String(FieldCredentialFormat, format)
}

// WithCredentialID sets the credential ID field.
func WithCredentialID(credentialID string) zap.Field {
	return zap.String(FieldCredentialID, credentialID)
}

// WithCredentialTypes sets the credential types field.
func WithCredentialTypes(types []string) zap.Field {
	return zap.Strings(FieldCredentialTypes, types)
}

// WithIssuerURI sets the issuer URI field.
func WithIssuerURI(issuerURI string) zap.Field {
	return zap.String(FieldIssuerURI, issuerURI)
}

// WithPolicy sets the verification policy name field.
func WithPolicy(policy string) zap.Field {
	return zap.String(FieldPolicy, policy)
}

// WithPresDefID sets the PresDefID (presentation definition ID) field.
func WithPresDefID(presDefID string) zap.Field {
	return zap.String(FieldPresDefID, presDefID)
}

// WithSessionID sets the issuance session ID field.
func WithSessionID(sessionID string) zap.Field {
	return zap.String(FieldSessionID, sessionID)
}

// WithSleep sets the sleep field.
func WithSleep(sleep time.Duration) zap.Field {
	return zap.Duration(FieldSleep, sleep)
}

// WithSubjectDID sets the subject DID field.
func WithSubjectDID(did string) zap.Field {
	return zap.String(FieldSubjectDID, did)
}

// WithUserID sets the user ID field.
func WithUserID(userID string) zap.Field {
	return zap.String(FieldUserID, userID)
}

// WithUserLogLevel sets the user log level field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithWebhookURL sets the webhook URL field.
func WithWebhookURL(webhookURL string) zap.Field {
	return zap.String(FieldWebhookURL, webhookURL)
}
