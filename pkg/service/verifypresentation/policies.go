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

	"github.com/hyperledger/aries-framework-go/pkg/doc/jose"
	"github.com/hyperledger/aries-framework-go/pkg/doc/jwt"
	"github.com/hyperledger/aries-framework-go/pkg/doc/presexch"
	"github.com/hyperledger/aries-framework-go/pkg/doc/verifiable"
	vdrapi "github.com/hyperledger/aries-framework-go/pkg/framework/aries/api/vdr"
	"github.com/piprate/json-gold/ld"
	"github.com/valyala/fastjson"
)

// ProofCheck validates the cryptographic proof of the presentation.
type ProofCheck struct {
	vdr            vdrapi.Registry
	documentLoader ld.DocumentLoader
}

func NewProofCheck(vdr vdrapi.Registry, documentLoader ld.DocumentLoader) *ProofCheck {
	return &ProofCheck{
		vdr:            vdr,
		documentLoader: documentLoader,
	}
}

func (c *ProofCheck) Name() string {
	return "proof"
}

func (c *ProofCheck) Check(_ context.Context, presentation *verifiable.Presentation, _ *Options) error {
	vpBytes := []byte(presentation.JWT)

	if presentation.JWT == "" {
		if len(presentation.Proofs) == 0 {
			return errors.New("presentation does not contain proof")
		}

		var err error

		vpBytes, err = json.Marshal(presentation)
		if err != nil {
			return fmt.Errorf("unexpected error on presentation marshal: %w", err)
		}
	}

	_, err := verifiable.ParsePresentation(
		vpBytes,
		verifiable.WithPresPublicKeyFetcher(
			verifiable.NewVDRKeyResolver(c.vdr).PublicKeyFetcher(),
		),
		verifiable.WithPresJSONLDDocumentLoader(c.documentLoader),
	)
	if err != nil {
		return fmt.Errorf("presentation proof validation: %w", err)
	}

	return nil
}

// ChallengeCheck validates that the challenge embedded in the presentation
// equals the nonce of the originating request.
type ChallengeCheck struct{}

func NewChallengeCheck() *ChallengeCheck {
	return &ChallengeCheck{}
}

func (c *ChallengeCheck) Name() string {
	return "challenge"
}

func (c *ChallengeCheck) Check(_ context.Context, presentation *verifiable.Presentation, opts *Options) error {
	if opts.Challenge == "" {
		return errors.New("expected challenge is not provided")
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

		if nonce := fastjson.GetString(rawClaims, "nonce"); nonce != opts.Challenge {
			return errors.New("presentation nonce does not match the request challenge")
		}

		return nil
	}

	if len(presentation.Proofs) == 0 {
		return errors.New("presentation does not contain proof")
	}

	challenge, _ := presentation.Proofs[0]["challenge"].(string)
	if challenge != opts.Challenge {
		return errors.New("presentation challenge does not match the request challenge")
	}

	if opts.Domain != "" {
		domain, _ := presentation.Proofs[0]["domain"].(string)
		if domain != opts.Domain {
			return errors.New("presentation domain does not match the request domain")
		}
	}

	return nil
}

// ClaimsCheck validates that the presented credentials satisfy the
// originally requested claim specification.
type ClaimsCheck struct {
	documentLoader ld.DocumentLoader
}

func NewClaimsCheck(documentLoader ld.DocumentLoader) *ClaimsCheck {
	return &ClaimsCheck{
		documentLoader: documentLoader,
	}
}

func (c *ClaimsCheck) Name() string {
	return "claims"
}

func (c *ClaimsCheck) Check(_ context.Context, presentation *verifiable.Presentation, opts *Options) error {
	if opts.ClaimSpec == nil {
		return nil
	}

	if pd := opts.ClaimSpec.PresentationDefinition; pd != nil {
		return c.matchPresentationDefinition(presentation, pd)
	}

	return c.matchCredentialTypes(presentation, opts.ClaimSpec.CredentialTypes)
}

func (c *ClaimsCheck) matchPresentationDefinition(
	presentation *verifiable.Presentation,
	pd *presexch.PresentationDefinition,
) error {
	// Match does not accept a presentation wrapped into the jwt "vp" claim.
	if presentation.JWT != "" {
		cp := *presentation
		cp.JWT = ""
		presentation = &cp
	}

	_, err := pd.Match(
		[]*verifiable.Presentation{presentation},
		c.documentLoader,
		presexch.WithCredentialOptions(
			verifiable.WithJSONLDDocumentLoader(c.documentLoader),
			verifiable.WithDisabledProofCheck(),
		),
		presexch.WithDisableSchemaValidation(),
	)
	if err != nil {
		return fmt.Errorf("presentation definition match: %w", err)
	}

	return nil
}

func (c *ClaimsCheck) matchCredentialTypes(presentation *verifiable.Presentation, requested []string) error {
	presented := map[string]struct{}{}

	for _, cred := range presentation.Credentials() {
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

		for _, t := range vc.Types {
			presented[t] = struct{}{}
		}
	}

	for _, want := range requested {
		if _, ok := presented[want]; !ok {
			return fmt.Errorf("requested credential type %q is not presented", want)
		}
	}

	return nil
}

// noVerifier is used when no JWT signature verification is needed.
// To be used with precaution.
type noVerifier struct{}

func (v noVerifier) Verify(_ jose.Headers, _, _, _ []byte) error {
	return nil
}
