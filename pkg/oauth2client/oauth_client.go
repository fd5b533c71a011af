/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package oauth2client wraps the oauth2 authorization-code machinery used
// against external issuers: authorize URL construction (directly or through
// a pushed authorization request), code exchange and PKCE generation.
package oauth2client

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	// GrantTypeAuthorizationCode is the standard authorization-code grant.
	GrantTypeAuthorizationCode = "authorization_code"
	// GrantTypePreAuthorizedCode is the OIDC4VCI pre-authorized-code grant.
	GrantTypePreAuthorizedCode = "urn:ietf:params:oauth:grant-type:pre-authorized_code"
)

// Client executes OAuth2 flows against an external authorization server.
type Client struct {
}

// NewOAuth2Client creates a Client.
func NewOAuth2Client() *Client {
	return &Client{}
}

// Exchange trades an authorization code for a token using the given HTTP
// client.
func (c *Client) Exchange(
	ctx context.Context,
	cfg oauth2.Config,
	code string,
	client *http.Client,
	opts ...oauth2.AuthCodeOption,
) (*oauth2.Token, error) {
	return (&cfg).Exchange(
		context.WithValue(ctx, oauth2.HTTPClient, client),
		code,
		opts...,
	)
}

// AuthCodeURL builds the authorize URL for a plain authorization-code flow.
func (c *Client) AuthCodeURL(_ context.Context, cfg oauth2.Config, state string, opts ...oauth2.AuthCodeOption) string {
	return (&cfg).AuthCodeURL(state, opts...)
}
