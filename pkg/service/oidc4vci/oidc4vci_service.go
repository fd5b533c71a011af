/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package oidc4vci implements the issuance side of the credential broker:
// issuer-initiated offers, pushed authorization, token exchange and
// credential endpoint fulfillment over a TTL-bound session cache.
package oidc4vci

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/valyala/fastjson"

	"github.com/provenid/vcbroker/internal/logfields"
	vcsverifiable "github.com/provenid/vcbroker/pkg/doc/verifiable"
	"github.com/provenid/vcbroker/pkg/event/spi"
	noopmetrics "github.com/provenid/vcbroker/pkg/observability/metrics/noop"
)

//go:generate mockgen -destination oidc4vci_service_mocks_test.go -self_package mocks -package oidc4vci_test -source=oidc4vci_service.go -mock_names sessionManager=MockSessionManager,issuerMetadataProvider=MockIssuerMetadataProvider,credentialStore=MockCredentialStore,executionContext=MockExecutionContext,proofSigner=MockProofSigner,eventService=MockEventService,pinGenerator=MockPinGenerator,metricsProvider=MockMetricsProvider

const proofTypeHeader = "openid4vci-proof+jwt"

var logger = log.New("oidc4vci-service")

type sessionManager interface {
	CreateSession(session *Session) (*Session, error)
	GetSession(id SessionID) (*Session, error)
	UpdateSession(session *Session) error
}

type issuerMetadataProvider interface {
	GetSupportedCredentials(ctx context.Context, issuerURI string) (vcsverifiable.SupportedFormats, error)
	ExecutePushedAuthorizationRequest(ctx context.Context, issuerURI string, par *PushedAuthorizationRequest) (*PushedAuthorizationResponse, error)
	GetAccessToken(ctx context.Context, issuerURI string, req *TokenRequest) (*TokenResponse, error)
	GetCredential(ctx context.Context, issuerURI string, req *CredentialEndpointRequest) (json.RawMessage, error)
}

type credentialStore interface {
	Store(ctx context.Context, id string, credential json.RawMessage) error
}

// executionContext scopes a unit of work to one user's storage and keys.
// Credential storage and proof signing never run outside such a scope.
type executionContext interface {
	RunWith(ctx context.Context, userID string, fn func(ctx context.Context) error) error
}

type proofSigner interface {
	Sign(ctx context.Context, subjectDID string, claims interface{}, headers map[string]interface{}) (string, error)
}

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type pinGenerator interface {
	Generate(challenge string) string
	Validate(challenge string, userInput string) bool
}

type metricsProvider interface {
	AuthorizationStepTime(value time.Duration)
	FinalizeIssuanceTime(value time.Duration)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	SessionManager  sessionManager
	IssuerMetadata  issuerMetadataProvider
	CredentialStore credentialStore
	ExecutionCtx    executionContext
	ProofSigner     proofSigner
	EventSvc        eventService
	EventTopic      string
	PinGenerator    pinGenerator
	Metrics         metricsProvider
}

// Service implements the OIDC4VCI issuance protocol.
type Service struct {
	sessions        sessionManager
	issuerMetadata  issuerMetadataProvider
	credentialStore credentialStore
	executionCtx    executionContext
	proofSigner     proofSigner
	eventSvc        eventService
	eventTopic      string
	pinGenerator    pinGenerator
	metrics         metricsProvider
}

// NewService returns a new Service instance.
func NewService(config *Config) *Service {
	metrics := config.Metrics
	if metrics == nil {
		metrics = noopmetrics.GetMetrics()
	}

	pinGen := config.PinGenerator
	if pinGen == nil {
		pinGen = NewPinGenerator()
	}

	return &Service{
		sessions:        config.SessionManager,
		issuerMetadata:  config.IssuerMetadata,
		credentialStore: config.CredentialStore,
		executionCtx:    config.ExecutionCtx,
		proofSigner:     config.ProofSigner,
		eventSvc:        config.EventSvc,
		eventTopic:      config.EventTopic,
		pinGenerator:    pinGen,
		metrics:         metrics,
	}
}

// InitiateIssuance builds an issuer-initiated offer the wallet can resolve
// into a session. A pre-authorized offer carries a one-time code and,
// when requested, a user PIN.
func (s *Service) InitiateIssuance(
	ctx context.Context,
	req *InitiateIssuanceRequest,
	preAuthorized bool,
) (*InitiationRequest, error) {
	if len(req.CredentialTypes) == 0 {
		return nil, fmt.Errorf("missing credential types")
	}

	initiation := &InitiationRequest{
		IssuerURI:       req.IssuerURI,
		CredentialTypes: req.CredentialTypes,
		UserPinRequired: req.UserPinRequired,
	}

	if preAuthorized {
		initiation.PreAuthorizedCode = generatePreAuthCode()

		if req.UserPinRequired {
			initiation.UserPin = s.pinGenerator.Generate(initiation.PreAuthorizedCode)
		}
	}

	initiation.OfferURL = buildOfferURL(initiation)

	logger.Debugc(ctx, "issuance offer built",
		logfields.WithIssuerURI(req.IssuerURI),
		logfields.WithCredentialTypes(req.CredentialTypes))

	return initiation, nil
}

// StartIssuerInitiatedIssuance creates and caches a session from the offer.
// No subject is bound yet.
func (s *Service) StartIssuerInitiatedIssuance(
	ctx context.Context,
	req *InitiationRequest,
) (SessionID, error) {
	session, err := s.sessions.CreateSession(&Session{
		IssuerURI:         req.IssuerURI,
		CredentialTypes:   req.CredentialTypes,
		IssuerInitiated:   true,
		PreAuthorized:     req.PreAuthorizedCode != "",
		PreAuthorizedCode: req.PreAuthorizedCode,
		UserPinRequired:   req.UserPinRequired,
		UserPin:           req.UserPin,
	})
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	s.sendSessionEvent(ctx, session, spi.IssuerOIDCInteractionInitiated)

	return session.ID, nil
}

// StartWalletInitiatedIssuance creates and caches a session for a wallet
// that approaches the issuer on its own, without an offer. The subject DID
// and user are bound immediately.
func (s *Service) StartWalletInitiatedIssuance(
	ctx context.Context,
	req *WalletInitiatedIssuanceRequest,
) (SessionID, error) {
	if req.SubjectDID == "" || req.UserID == "" {
		return "", ErrNoSubjectBound
	}

	session, err := s.sessions.CreateSession(&Session{
		IssuerURI:       req.IssuerURI,
		CredentialTypes: req.CredentialTypes,
		IssuerInitiated: false,
		SubjectDID:      req.SubjectDID,
		UserID:          req.UserID,
	})
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	s.sendSessionEvent(ctx, session, spi.IssuerOIDCInteractionInitiated)

	return session.ID, nil
}

// ContinueIssuerInitiatedIssuance binds the subject DID and user to the
// session. A pre-authorized session finalizes immediately; otherwise the
// session is returned awaiting the authorization step. Rebinding a session
// to a different subject or user is rejected.
func (s *Service) ContinueIssuerInitiatedIssuance(
	ctx context.Context,
	sessionID SessionID,
	subjectDID, userID, pin string,
) (*Session, error) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if !session.IssuerInitiated {
		return nil, ErrWrongFlow
	}

	if session.SubjectDID != "" && session.SubjectDID != subjectDID {
		return nil, ErrSubjectAlreadyBound
	}

	if session.UserID != "" && session.UserID != userID {
		return nil, ErrSubjectAlreadyBound
	}

	session.SubjectDID = subjectDID
	session.UserID = userID

	if err = s.sessions.UpdateSession(session); err != nil {
		return nil, err
	}

	if session.PreAuthorized {
		return s.FinalizeIssuance(ctx, sessionID, session.PreAuthorizedCode, pin)
	}

	return session, nil
}

// Authorize looks up the session and runs the authorization step for it.
func (s *Service) Authorize(ctx context.Context, sessionID SessionID) (string, error) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		return "", err
	}

	return s.ExecuteAuthorizationStep(ctx, session)
}

// ExecuteAuthorizationStep resolves the issuer's metadata, negotiates a
// format per requested credential type and pushes the authorization request.
// It returns the issuer's authorize redirect URI.
func (s *Service) ExecuteAuthorizationStep(ctx context.Context, session *Session) (string, error) {
	startTime := time.Now()

	defer func() {
		s.metrics.AuthorizationStepTime(time.Since(startTime))
	}()

	supported, err := s.issuerMetadata.GetSupportedCredentials(ctx, session.IssuerURI)
	if err != nil {
		return "", fmt.Errorf("%w: resolve issuer metadata: %v", ErrIssuerUnreachable, err)
	}

	details, err := negotiateAuthorizationDetails(session, supported)
	if err != nil {
		return "", err
	}

	parResp, err := s.issuerMetadata.ExecutePushedAuthorizationRequest(ctx, session.IssuerURI,
		&PushedAuthorizationRequest{
			State:                string(session.ID),
			Challenge:            session.Nonce,
			AuthorizationDetails: details,
		})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthorizationRejected, err)
	}

	session.State = SessionStateAuthorizationRequested
	session.CodeVerifier = parResp.CodeVerifier

	if err = s.sessions.UpdateSession(session); err != nil {
		return "", err
	}

	s.sendSessionEvent(ctx, session, spi.IssuerOIDCInteractionAuthorizationRequestPrepared)

	return parResp.AuthorizationURL, nil
}

// FinalizeIssuance exchanges the authorization or pre-authorized code for an
// access token and fetches one credential per requested type.
//
// A declined token exchange is a normal, retryable outcome: the session is
// returned unchanged with a nil error and callers must check its state.
func (s *Service) FinalizeIssuance(
	ctx context.Context,
	sessionID SessionID,
	code, pin string,
) (*Session, error) {
	startTime := time.Now()

	defer func() {
		s.metrics.FinalizeIssuanceTime(time.Since(startTime))
	}()

	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.UserID == "" {
		return nil, ErrUserNotConfirmed
	}

	if session.SubjectDID == "" {
		return nil, ErrNoSubjectBound
	}

	if session.UserPinRequired && !s.pinGenerator.Validate(session.UserPin, pin) {
		return nil, fmt.Errorf("%w: pin mismatch", ErrUserNotConfirmed)
	}

	tokenResp, err := s.issuerMetadata.GetAccessToken(ctx, session.IssuerURI, &TokenRequest{
		Code:          code,
		PreAuthorized: session.PreAuthorized,
		UserPin:       pin,
		CodeVerifier:  session.CodeVerifier,
	})
	if err != nil {
		logger.Warnc(ctx, "token exchange declined",
			logfields.WithSessionID(string(session.ID)), log.WithError(err))

		return session, nil
	}

	session.Tokens = &TokenSet{
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
		ObtainedAt:   time.Now().UTC(),
	}
	// An issuer that returns no fresh c_nonce keeps the current one valid.
	if tokenResp.CNonce != "" {
		session.CNonce = tokenResp.CNonce
	}

	session.State = SessionStateTokenIssued

	if err = s.sessions.UpdateSession(session); err != nil {
		return nil, err
	}

	issued, err := s.fetchCredentials(ctx, session)
	if err != nil {
		s.sendSessionEvent(ctx, session, spi.IssuerOIDCInteractionFailed)

		return nil, err
	}

	session.Credentials = issued
	session.State = SessionStateCredentialIssued

	if err = s.sessions.UpdateSession(session); err != nil {
		return nil, err
	}

	s.sendSessionEvent(ctx, session, spi.IssuerOIDCInteractionSucceeded)

	return session, nil
}

// fetchCredentials requests one credential per requested type, each with a
// fresh holder proof, inside the bound user's execution context.
func (s *Service) fetchCredentials(ctx context.Context, session *Session) ([]*IssuedCredential, error) {
	supported, err := s.issuerMetadata.GetSupportedCredentials(ctx, session.IssuerURI)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve issuer metadata: %v", ErrIssuerUnreachable, err)
	}

	var issued []*IssuedCredential

	err = s.executionCtx.RunWith(ctx, session.UserID, func(ctx context.Context) error {
		for _, credentialType := range session.CredentialTypes {
			format, ok := vcsverifiable.NegotiateFormat(credentialType, session.SubjectDID, supported)
			if !ok {
				return fmt.Errorf("no usable format for credential type %q", credentialType)
			}

			proof, signErr := s.buildProof(ctx, session)
			if signErr != nil {
				return fmt.Errorf("build proof: %w", signErr)
			}

			credential, fetchErr := s.issuerMetadata.GetCredential(ctx, session.IssuerURI,
				&CredentialEndpointRequest{
					AccessToken:    session.Tokens.AccessToken,
					CredentialType: credentialType,
					Format:         format,
					Proof:          proof,
				})
			if fetchErr != nil {
				return fmt.Errorf("%w: get credential %q: %v", ErrIssuerUnreachable, credentialType, fetchErr)
			}

			id := fastjson.GetString(credential, "id")
			if id == "" {
				id = "urn:uuid:" + uuid.NewString()
			}

			if storeErr := s.credentialStore.Store(ctx, id, credential); storeErr != nil {
				return fmt.Errorf("store credential: %w", storeErr)
			}

			logger.Debugc(ctx, "credential issued",
				logfields.WithSessionID(string(session.ID)),
				logfields.WithCredentialID(id),
				logfields.WithCredentialFormat(string(format)))

			issued = append(issued, &IssuedCredential{
				ID:         id,
				Types:      []string{credentialType},
				Format:     format,
				Credential: credential,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return issued, nil
}

type proofClaims struct {
	Issuer   string `json:"iss,omitempty"`
	Audience string `json:"aud,omitempty"`
	IssuedAt int64  `json:"iat,omitempty"`
	Nonce    string `json:"nonce,omitempty"`
}

func (s *Service) buildProof(ctx context.Context, session *Session) (string, error) {
	nonce := session.CNonce
	if nonce == "" {
		nonce = session.Nonce
	}

	claims := &proofClaims{
		Issuer:   session.SubjectDID,
		Audience: session.IssuerURI,
		IssuedAt: time.Now().Unix(),
		Nonce:    nonce,
	}

	return s.proofSigner.Sign(ctx, session.SubjectDID, claims, map[string]interface{}{
		"typ": proofTypeHeader,
	})
}

func negotiateAuthorizationDetails(
	session *Session,
	supported vcsverifiable.SupportedFormats,
) ([]*AuthorizationDetails, error) {
	details := make([]*AuthorizationDetails, 0, len(session.CredentialTypes))

	for _, credentialType := range session.CredentialTypes {
		format, ok := vcsverifiable.NegotiateFormat(credentialType, session.SubjectDID, supported)
		if !ok {
			return nil, fmt.Errorf("%w: no usable format for credential type %q",
				ErrAuthorizationRejected, credentialType)
		}

		details = append(details, &AuthorizationDetails{
			Type:           "openid_credential",
			CredentialType: credentialType,
			Format:         format,
		})
	}

	return details, nil
}

func buildOfferURL(initiation *InitiationRequest) string {
	q := url.Values{}
	q.Set("issuer", initiation.IssuerURI)

	for _, credentialType := range initiation.CredentialTypes {
		q.Add("credential_type", credentialType)
	}

	if initiation.PreAuthorizedCode != "" {
		q.Set("pre-authorized_code", initiation.PreAuthorizedCode)
		q.Set("user_pin_required", strconv.FormatBool(initiation.UserPinRequired))
	}

	return "openid-initiate-issuance://?" + q.Encode()
}

func generatePreAuthCode() string {
	return uuid.NewString() + fmt.Sprint(time.Now().UnixNano())
}

func (s *Service) sendSessionEvent(ctx context.Context, session *Session, eventType spi.EventType) {
	if s.eventSvc == nil {
		return
	}

	payload := map[string]interface{}{
		"sessionID": string(session.ID),
		"state":     int(session.State),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Warnc(ctx, "Failed to marshal event payload. Ignoring..", log.WithError(err))

		return
	}

	event := spi.NewEventWithPayload(string(session.ID), "source://vcbroker/issuer", eventType, payloadBytes)
	event.TransactionID = string(session.ID)

	if err = s.eventSvc.Publish(ctx, s.eventTopic, event); err != nil {
		logger.Warnc(ctx, "failed to publish event",
			logfields.WithSessionID(string(session.ID)), log.WithError(err))
	}
}
