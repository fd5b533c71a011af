/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

// Format is the wire encoding of an issued credential or presentation.
type Format string

const (
	JwtVC Format = "jwt_vc"
	LdpVC Format = "ldp_vc"
)

// SupportedFormats is the issuer-advertised format table: credential type to
// the formats the issuer can produce for it.
type SupportedFormats map[string][]Format

func (sf SupportedFormats) has(credentialType string, format Format) bool {
	for _, f := range sf[credentialType] {
		if f == format {
			return true
		}
	}

	return false
}
