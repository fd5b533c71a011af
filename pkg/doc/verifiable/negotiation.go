/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"strings"
)

// methodPreferredFormat maps a DID method to the credential format its
// ecosystem expects. Methods without an entry default to jwt_vc.
var methodPreferredFormat = map[string]Format{ //nolint:gochecknoglobals
	"key":  JwtVC,
	"jwk":  JwtVC,
	"web":  JwtVC,
	"ion":  JwtVC,
	"ebsi": JwtVC,
	"sov":  LdpVC,
	"indy": LdpVC,
	"iota": LdpVC,
}

// NegotiateFormat chooses the credential format for the given credential type
// and subject DID against the issuer-advertised format table.
//
// The DID method's preferred format wins if the issuer advertises it for the
// credential type. Otherwise the first advertised format that is jwt_vc or
// ldp_vc is taken, in that priority. A credential type the issuer does not
// advertise at all gets the method-preferred format unconditionally. The
// second return value is false only when the type is advertised but none of
// its formats is usable.
//
// This is a pure function: no I/O, no caching.
func NegotiateFormat(credentialType, subjectDID string, issuerSupported SupportedFormats) (Format, bool) {
	preferred := MethodPreferredFormat(subjectDID)

	advertised, ok := issuerSupported[credentialType]
	if !ok {
		return preferred, true
	}

	if issuerSupported.has(credentialType, preferred) {
		return preferred, true
	}

	for _, fallback := range []Format{JwtVC, LdpVC} {
		for _, f := range advertised {
			if f == fallback {
				return f, true
			}
		}
	}

	return "", false
}

// MethodPreferredFormat returns the format preferred by the DID's method.
func MethodPreferredFormat(did string) Format {
	parts := strings.SplitN(did, ":", 3)
	if len(parts) < 2 {
		return JwtVC
	}

	if f, ok := methodPreferredFormat[parts[1]]; ok {
		return f
	}

	return JwtVC
}
