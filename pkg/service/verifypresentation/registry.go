/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifypresentation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hyperledger/aries-framework-go/pkg/doc/jwt"
	"github.com/hyperledger/aries-framework-go/pkg/doc/verifiable"
	"github.com/piprate/json-gold/ld"
	"github.com/valyala/fastjson"
)

// Registry resolves extra policies by name.
type Registry struct {
	factories map[string]func(argument json.RawMessage) (PolicyCheck, error)
}

// NewRegistry creates Registry with the built-in policy set.
func NewRegistry(documentLoader ld.DocumentLoader) *Registry {
	return &Registry{
		factories: map[string]func(argument json.RawMessage) (PolicyCheck, error){
			"trustedIssuer": func(argument json.RawMessage) (PolicyCheck, error) {
				var issuers []string

				if err := json.Unmarshal(argument, &issuers); err != nil {
					return nil, fmt.Errorf("trustedIssuer argument: %w", err)
				}

				if len(issuers) == 0 {
					return nil, errors.New("trustedIssuer requires at least one issuer")
				}

				return NewTrustedIssuerCheck(documentLoader, issuers), nil
			},
			"domain": func(json.RawMessage) (PolicyCheck, error) {
				return NewDomainCheck(), nil
			},
		},
	}
}

// Resolve returns the policy registered under name.
func (r *Registry) Resolve(name string, argument json.RawMessage) (PolicyCheck, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown policy %q", name)
	}

	return factory(argument)
}

// TrustedIssuerCheck validates that every presented credential was issued
// by one of the allowed issuers.
type TrustedIssuerCheck struct {
	documentLoader ld.DocumentLoader
	allowed        map[string]struct{}
}

func NewTrustedIssuerCheck(documentLoader ld.DocumentLoader, issuers []string) *TrustedIssuerCheck {
	allowed := make(map[string]struct{}, len(issuers))

	for _, issuer := range issuers {
		allowed[issuer] = struct{}{}
	}

	return &TrustedIssuerCheck{
		documentLoader: documentLoader,
		allowed:        allowed,
	}
}

func (c *TrustedIssuerCheck) Name() string {
	return "trustedIssuer"
}

func (c *TrustedIssuerCheck) Check(_ context.Context, presentation *verifiable.Presentation, _ *Options) error {
	credentials := presentation.Credentials()
	if len(credentials) == 0 {
		return errors.New("presentation contains no credentials")
	}

	for _, cred := range credentials {
		vcBytes, err := json.Marshal(cred)
		if err != nil {
			return fmt.Errorf("unexpected error on credential marshal: %w", err)
		}

		vc, err := verifiable.ParseCredential(vcBytes,
			verifiable.WithDisabledProofCheck(),
			verifiable.WithJSONLDDocumentLoader(c.documentLoader))
		if err != nil {
			return fmt.Errorf("parse presented credential: %w", err)
		}

		if _, ok := c.allowed[vc.Issuer.ID]; !ok {
			return fmt.Errorf("credential issuer %q is not trusted", vc.Issuer.ID)
		}
	}

	return nil
}

// DomainCheck validates that the presentation targets the expected domain.
type DomainCheck struct{}

func NewDomainCheck() *DomainCheck {
	return &DomainCheck{}
}

func (c *DomainCheck) Name() string {
	return "domain"
}

func (c *DomainCheck) Check(_ context.Context, presentation *verifiable.Presentation, opts *Options) error {
	if opts.Domain == "" {
		return errors.New("expected domain is not provided")
	}

	if presentation.JWT != "" {
		_, rawClaims, err := jwt.Parse(
			presentation.JWT,
			jwt.WithSignatureVerifier(&noVerifier{}),
			jwt.WithIgnoreClaimsMapDecoding(true),
		)
		if err != nil {
			return fmt.Errorf("parse presentation as jwt: %w", err)
		}

		if aud := fastjson.GetString(rawClaims, "aud"); aud != opts.Domain {
			return errors.New("presentation audience does not match the expected domain")
		}

		return nil
	}

	if len(presentation.Proofs) == 0 {
		return errors.New("presentation does not contain proof")
	}

	domain, _ := presentation.Proofs[0]["domain"].(string)
	if domain != opts.Domain {
		return errors.New("presentation domain does not match the expected domain")
	}

	return nil
}
