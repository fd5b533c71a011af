/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuermetadata talks to an external credential issuer over HTTP:
// well-known metadata discovery, pushed authorization requests, token
// exchange and the credential endpoint.
package issuermetadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/net/context/ctxhttp"
	"golang.org/x/oauth2"

	vcsverifiable "github.com/provenid/vcbroker/pkg/doc/verifiable"
	"github.com/provenid/vcbroker/pkg/oauth2client"
	"github.com/provenid/vcbroker/pkg/service/oidc4vci"
)

const defaultScope = "openid"

// Config holds configuration options and dependencies for Service.
type Config struct {
	HTTPClient  *http.Client
	OAuthClient *oauth2client.Client
	ClientID    string
	RedirectURL string
}

// Service is the HTTP issuer metadata provider.
type Service struct {
	httpClient  *http.Client
	oauthClient *oauth2client.Client
	clientID    string
	redirectURL string
}

// NewService returns a new Service instance.
func NewService(config *Config) *Service {
	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	oauthClient := config.OAuthClient
	if oauthClient == nil {
		oauthClient = oauth2client.NewOAuth2Client()
	}

	return &Service{
		httpClient:  client,
		oauthClient: oauthClient,
		clientID:    config.ClientID,
		redirectURL: config.RedirectURL,
	}
}

// oidcConfiguration is the issuer's /.well-known/openid-configuration.
type oidcConfiguration struct {
	AuthorizationEndpoint              string `json:"authorization_endpoint"`
	PushedAuthorizationRequestEndpoint string `json:"pushed_authorization_request_endpoint"`
	TokenEndpoint                      string `json:"token_endpoint"`
}

// credentialIssuerConfiguration is the issuer's
// /.well-known/openid-credential-issuer.
type credentialIssuerConfiguration struct {
	CredentialEndpoint   string                `json:"credential_endpoint"`
	CredentialsSupported []credentialSupported `json:"credentials_supported"`
}

type credentialSupported struct {
	Format string   `json:"format"`
	Types  []string `json:"types"`
}

type accessTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	CNonce       string `json:"c_nonce,omitempty"`
}

type credentialRequest struct {
	Format string          `json:"format,omitempty"`
	Types  []string        `json:"types"`
	Proof  credentialProof `json:"proof,omitempty"`
}

type credentialProof struct {
	ProofType string `json:"proof_type"`
	JWT       string `json:"jwt"`
}

type credentialResponse struct {
	Credential interface{} `json:"credential"`
	CNonce     string      `json:"c_nonce,omitempty"`
	Format     string      `json:"format,omitempty"`
}

// GetSupportedCredentials returns the issuer-advertised format table from
// its credential issuer metadata.
func (s *Service) GetSupportedCredentials(
	ctx context.Context,
	issuerURI string,
) (vcsverifiable.SupportedFormats, error) {
	var config credentialIssuerConfiguration

	if err := s.getWellKnown(ctx, issuerURI+"/.well-known/openid-credential-issuer", &config); err != nil {
		return nil, err
	}

	supported := vcsverifiable.SupportedFormats{}

	for _, entry := range config.CredentialsSupported {
		for _, credentialType := range entry.Types {
			supported[credentialType] = append(supported[credentialType],
				vcsverifiable.Format(entry.Format))
		}
	}

	return supported, nil
}

// ExecutePushedAuthorizationRequest pushes the authorization request to the
// issuer's PAR endpoint and returns the authorize redirect URI along with
// the PKCE verifier the token exchange must present.
func (s *Service) ExecutePushedAuthorizationRequest(
	ctx context.Context,
	issuerURI string,
	par *oidc4vci.PushedAuthorizationRequest,
) (*oidc4vci.PushedAuthorizationResponse, error) {
	config, err := s.getOIDCConfiguration(ctx, issuerURI)
	if err != nil {
		return nil, err
	}

	details, err := json.Marshal(par.AuthorizationDetails)
	if err != nil {
		return nil, fmt.Errorf("marshal authorization details: %w", err)
	}

	verifier, challenge, method, err := s.oauthClient.GeneratePKCE()
	if err != nil {
		return nil, fmt.Errorf("generate pkce: %w", err)
	}

	authURL, err := s.oauthClient.AuthCodeURLWithPAR(ctx,
		s.oauthConfig(config),
		config.PushedAuthorizationRequestEndpoint,
		par.State,
		s.httpClient,
		oauth2client.SetAuthURLParam("code_challenge", challenge),
		oauth2client.SetAuthURLParam("code_challenge_method", method),
		oauth2client.SetAuthURLParam("nonce", par.Challenge),
		oauth2client.SetAuthURLParam("authorization_details", string(details)),
	)
	if err != nil {
		return nil, err
	}

	return &oidc4vci.PushedAuthorizationResponse{
		AuthorizationURL: authURL,
		CodeVerifier:     verifier,
	}, nil
}

// GetAccessToken exchanges the authorization or pre-authorized code at the
// issuer's token endpoint.
func (s *Service) GetAccessToken(
	ctx context.Context,
	issuerURI string,
	req *oidc4vci.TokenRequest,
) (*oidc4vci.TokenResponse, error) {
	config, err := s.getOIDCConfiguration(ctx, issuerURI)
	if err != nil {
		return nil, err
	}

	if req.PreAuthorized {
		return s.preAuthorizedToken(ctx, config.TokenEndpoint, req)
	}

	var opts []oauth2.AuthCodeOption
	if req.CodeVerifier != "" {
		opts = append(opts, oauth2.SetAuthURLParam("code_verifier", req.CodeVerifier))
	}

	token, err := s.oauthClient.Exchange(ctx, s.oauthConfig(config), req.Code, s.httpClient, opts...)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	resp := &oidc4vci.TokenResponse{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}

	if nonce, ok := token.Extra("c_nonce").(string); ok {
		resp.CNonce = nonce
	}

	return resp, nil
}

// GetCredential requests one credential from the issuer's credential
// endpoint with a bearer token and a holder proof.
func (s *Service) GetCredential(
	ctx context.Context,
	issuerURI string,
	req *oidc4vci.CredentialEndpointRequest,
) (json.RawMessage, error) {
	var config credentialIssuerConfiguration

	if err := s.getWellKnown(ctx, issuerURI+"/.well-known/openid-credential-issuer", &config); err != nil {
		return nil, err
	}

	body, err := json.Marshal(&credentialRequest{
		Format: string(req.Format),
		Types:  []string{req.CredentialType},
		Proof: credentialProof{
			ProofType: "jwt",
			JWT:       req.Proof,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal credential request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		config.CredentialEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create credential request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.AccessToken)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post credential request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("credential endpoint: status code %d", resp.StatusCode)
	}

	var credResp credentialResponse
	if err = json.NewDecoder(resp.Body).Decode(&credResp); err != nil {
		return nil, fmt.Errorf("decode credential response: %w", err)
	}

	credential, err := json.Marshal(credResp.Credential)
	if err != nil {
		return nil, fmt.Errorf("marshal credential: %w", err)
	}

	return credential, nil
}

func (s *Service) preAuthorizedToken(
	ctx context.Context,
	tokenEndpoint string,
	req *oidc4vci.TokenRequest,
) (*oidc4vci.TokenResponse, error) {
	values := url.Values{
		"grant_type":          {oauth2client.GrantTypePreAuthorizedCode},
		"pre-authorized_code": {req.Code},
	}

	if req.UserPin != "" {
		values.Add("user_pin", req.UserPin)
	}

	resp, err := ctxhttp.PostForm(ctx, s.httpClient, tokenEndpoint, values)
	if err != nil {
		return nil, fmt.Errorf("post token request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint: status code %d", resp.StatusCode)
	}

	var token accessTokenResponse
	if err = json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}

	return &oidc4vci.TokenResponse{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		CNonce:       token.CNonce,
	}, nil
}

func (s *Service) getOIDCConfiguration(ctx context.Context, issuerURI string) (*oidcConfiguration, error) {
	var config oidcConfiguration

	if err := s.getWellKnown(ctx, issuerURI+"/.well-known/openid-configuration", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (s *Service) getWellKnown(ctx context.Context, wellKnownURL string, target interface{}) error {
	resp, err := ctxhttp.Get(ctx, s.httpClient, wellKnownURL)
	if err != nil {
		return fmt.Errorf("get issuer well-known: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get issuer well-known: status code %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read issuer well-known: %w", err)
	}

	if err = json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("decode issuer well-known: %w", err)
	}

	return nil
}

func (s *Service) oauthConfig(config *oidcConfiguration) oauth2.Config {
	return oauth2.Config{
		ClientID:    s.clientID,
		RedirectURL: s.redirectURL,
		Scopes:      []string{defaultScope},
		Endpoint: oauth2.Endpoint{
			AuthURL:   config.AuthorizationEndpoint,
			TokenURL:  config.TokenEndpoint,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}
