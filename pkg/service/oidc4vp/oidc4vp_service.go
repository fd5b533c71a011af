/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination oidc4vp_service_mocks_test.go -self_package mocks -package oidc4vp_test -source=oidc4vp_service.go -mock_names transactionManager=MockTransactionManager,presentationVerifier=MockPresentationVerifier,eventService=MockEventService

package oidc4vp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/hyperledger/aries-framework-go/pkg/doc/jose"
	"github.com/hyperledger/aries-framework-go/pkg/doc/jwt"
	"github.com/hyperledger/aries-framework-go/pkg/doc/verifiable"
	vdrapi "github.com/hyperledger/aries-framework-go/pkg/framework/aries/api/vdr"
	"github.com/piprate/json-gold/ld"
	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/valyala/fastjson"

	"github.com/provenid/vcbroker/internal/logfields"
	vcsverifiable "github.com/provenid/vcbroker/pkg/doc/verifiable"
	"github.com/provenid/vcbroker/pkg/event/spi"
	"github.com/provenid/vcbroker/pkg/service/verifypresentation"
)

var logger = log.New("oidc4vp-service")

const (
	idTokenSignatureCheck = "idTokenSignature"
	nonceBindingCheck     = "nonceBinding"
)

type transactionManager interface {
	CreateRequest(
		claimSpec *vcsverifiable.ClaimSpec,
		state, redirectURI, responseMode, webhookURL string,
	) (*PresentationRequest, error)
	ConsumeRequest(id TxID) (*PresentationRequest, error)
	StoreResult(result *VerificationResult) error
	ConsumeResult(id TxID) (*VerificationResult, error)
}

type presentationVerifier interface {
	VerifyPresentation(
		ctx context.Context,
		presentation *verifiable.Presentation,
		opts *verifypresentation.Options,
	) (bool, []verifypresentation.PolicyCheckResult, error)
}

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type metricsProvider interface {
	CheckAuthorizationResponseTime(value time.Duration)
}

type Config struct {
	TransactionManager   transactionManager
	PresentationVerifier presentationVerifier
	VDR                  vdrapi.Registry
	DocumentLoader       ld.DocumentLoader
	EventSvc             eventService
	EventTopic           string
	ResponseURI          string
	Metrics              metricsProvider
	JWTVerifier          jose.SignatureVerifier
}

// Service implements the verifier side of the SIOPv2/OIDC4VP exchange.
type Service struct {
	transactionManager   transactionManager
	presentationVerifier presentationVerifier
	documentLoader       ld.DocumentLoader
	eventSvc             eventService
	eventTopic           string
	responseURI          string
	metrics              metricsProvider
	jwtVerifier          jose.SignatureVerifier
}

func NewService(cfg *Config) *Service {
	jwtVerifier := cfg.JWTVerifier
	if jwtVerifier == nil {
		jwtVerifier = jwt.NewVerifier(jwt.KeyResolverFunc(
			verifiable.NewVDRKeyResolver(cfg.VDR).PublicKeyFetcher()))
	}

	return &Service{
		transactionManager:   cfg.TransactionManager,
		presentationVerifier: cfg.PresentationVerifier,
		documentLoader:       cfg.DocumentLoader,
		eventSvc:             cfg.EventSvc,
		eventTopic:           cfg.EventTopic,
		responseURI:          cfg.ResponseURI,
		metrics:              cfg.Metrics,
		jwtVerifier:          jwtVerifier,
	}
}

// InitiateOidcInteraction creates and caches a presentation request the
// wallet can answer exactly once.
func (s *Service) InitiateOidcInteraction(
	ctx context.Context,
	req *InitiateRequest,
) (*PresentationRequest, error) {
	responseMode := req.ResponseMode
	if responseMode == "" {
		responseMode = ResponseModeFormPost
	}

	request, err := s.transactionManager.CreateRequest(
		req.ClaimSpec, req.State, s.responseURI, responseMode, req.WebhookURL)
	if err != nil {
		return nil, fmt.Errorf("create presentation request: %w", err)
	}

	logger.Debugc(ctx, "InitiateOidcInteraction request created",
		log.WithTxID(string(request.ID)))

	s.sendTxEvent(ctx, spi.VerifierOIDCInteractionInitiated, request.ID, request.WebhookURL, nil)

	return request, nil
}

// VerifyAuthorizationResponse consumes the cached request matching the
// response state and verifies the wallet tokens against it. An invalid
// presentation is an ordinary result value, not an error.
func (s *Service) VerifyAuthorizationResponse(
	ctx context.Context,
	response *AuthorizationResponse,
) (*VerificationResult, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.CheckAuthorizationResponseTime(time.Since(startTime))
		}
	}()

	request, err := s.transactionManager.ConsumeRequest(TxID(response.State))
	if err != nil {
		return nil, fmt.Errorf("consume presentation request: %w", err)
	}

	logger.Debugc(ctx, "VerifyAuthorizationResponse request consumed",
		log.WithTxID(string(request.ID)), log.WithState(response.State))

	result := &VerificationResult{
		ID:         request.ID,
		WebhookURL: request.WebhookURL,
		Created:    time.Now().UTC(),
	}

	subjectDID, idTokenNonce, err := s.verifyIDToken(response.IDToken)
	if err != nil {
		result.PolicyResults = append(result.PolicyResults,
			verifypresentation.PolicyCheckResult{
				Check: idTokenSignatureCheck,
				Error: err.Error(),
			})

		s.sendTxEvent(ctx, spi.VerifierOIDCInteractionFailed, request.ID, request.WebhookURL, result)

		return result, nil
	}

	result.SubjectDID = subjectDID

	if idTokenNonce != request.Nonce {
		result.PolicyResults = append(result.PolicyResults,
			verifypresentation.PolicyCheckResult{
				Check: nonceBindingCheck,
				Error: "id_token nonce does not match the request nonce",
			})

		s.sendTxEvent(ctx, spi.VerifierOIDCInteractionFailed, request.ID, request.WebhookURL, result)

		return result, nil
	}

	presentation, err := verifiable.ParsePresentation(
		[]byte(response.VPToken),
		verifiable.WithPresDisabledProofCheck(),
		verifiable.WithPresJSONLDDocumentLoader(s.documentLoader),
	)
	if err != nil {
		result.PolicyResults = append(result.PolicyResults,
			verifypresentation.PolicyCheckResult{
				Check: "proof",
				Error: fmt.Sprintf("parse vp_token: %s", err.Error()),
			})

		s.sendTxEvent(ctx, spi.VerifierOIDCInteractionFailed, request.ID, request.WebhookURL, result)

		return result, nil
	}

	valid, policyResults, err := s.presentationVerifier.VerifyPresentation(ctx, presentation,
		&verifypresentation.Options{
			Challenge: request.Nonce,
			ClaimSpec: request.ClaimSpec,
		})
	if err != nil {
		return nil, fmt.Errorf("verify presentation: %w", err)
	}

	result.Valid = valid
	result.PolicyResults = append(result.PolicyResults, policyResults...)

	// Jwt-encoded vp tokens are kept as a json string.
	if json.Valid([]byte(response.VPToken)) {
		result.Presentation = json.RawMessage(response.VPToken)
	} else {
		result.Presentation, _ = json.Marshal(response.VPToken) //nolint:errcheck
	}

	if valid {
		result.AccessToken = string(request.ID)

		if err = s.transactionManager.StoreResult(result); err != nil {
			return nil, fmt.Errorf("store verification result: %w", err)
		}

		logger.Debugc(ctx, "VerifyAuthorizationResponse presentation verified",
			log.WithTxID(string(request.ID)), logfields.WithSubjectDID(subjectDID))

		s.sendTxEvent(ctx, spi.VerifierOIDCInteractionSucceeded, request.ID, request.WebhookURL, result)

		return result, nil
	}

	s.sendTxEvent(ctx, spi.VerifierOIDCInteractionFailed, request.ID, request.WebhookURL, result)

	return result, nil
}

// GetVerificationResult redeems a verification result exactly once.
func (s *Service) GetVerificationResult(ctx context.Context, id string) (*VerificationResult, error) {
	result, err := s.transactionManager.ConsumeResult(TxID(id))
	if err != nil {
		return nil, err
	}

	logger.Debugc(ctx, "GetVerificationResult result redeemed", log.WithTxID(id))

	s.sendTxEvent(ctx, spi.VerifierOIDCInteractionClaimsRetrieved, result.ID, result.WebhookURL, result)

	return result, nil
}

// VerificationRedirectURI constructs the post-verification redirect
// target. Deterministic, no I/O.
func (s *Service) VerificationRedirectURI(result *VerificationResult, uiBaseURL string) string {
	route := "/verification/callback"
	if !result.Valid {
		route = "/verification/error"
	}

	query := url.Values{}
	query.Set("access_token", string(result.ID))

	return uiBaseURL + route + "?" + query.Encode()
}

func (s *Service) verifyIDToken(idToken string) (string, string, error) {
	_, rawClaims, err := jwt.Parse(
		idToken,
		jwt.WithSignatureVerifier(s.jwtVerifier),
		jwt.WithIgnoreClaimsMapDecoding(true),
	)
	if err != nil {
		return "", "", fmt.Errorf("parse id_token: %w", err)
	}

	if exp := fastjson.GetInt(rawClaims, "exp"); exp > 0 && int64(exp) < time.Now().Unix() {
		return "", "", fmt.Errorf("id_token expired")
	}

	return fastjson.GetString(rawClaims, "sub"), fastjson.GetString(rawClaims, "nonce"), nil
}

func (s *Service) sendTxEvent(
	ctx context.Context,
	eventType spi.EventType,
	txID TxID,
	webhookURL string,
	result *VerificationResult,
) {
	if s.eventSvc == nil {
		return
	}

	payload := map[string]interface{}{
		"txID": string(txID),
	}

	if webhookURL != "" {
		payload["webhookURL"] = webhookURL
	}

	if result != nil {
		payload["valid"] = result.Valid

		if result.SubjectDID != "" {
			payload["subjectDID"] = result.SubjectDID
		}
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Warnc(ctx, "Failed to marshal event payload. Ignoring..", log.WithError(err))

		return
	}

	event := spi.NewEventWithPayload(string(txID), "source://vcbroker/verifier", eventType, payloadBytes)

	if err = s.eventSvc.Publish(ctx, s.eventTopic, event); err != nil {
		logger.Warnc(ctx, "Failed to send OIDC verifier event. Ignoring..", log.WithError(err))
	}
}
