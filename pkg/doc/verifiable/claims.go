/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"github.com/hyperledger/aries-framework-go/pkg/doc/presexch"
)

// ClaimSpec describes the claims a verifier asks a wallet to present.
// Either an explicit set of credential types or a presentation definition
// is provided, never both.
type ClaimSpec struct {
	CredentialTypes        []string                         `json:"credentialTypes,omitempty"`
	PresentationDefinition *presexch.PresentationDefinition `json:"presentationDefinition,omitempty"`
}
