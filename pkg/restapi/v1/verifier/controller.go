/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package verifier_test -source=controller.go -mock_names oidc4VPService=MockOIDC4VPService

// Package verifier exposes the presentation side of the broker over HTTP:
// interaction initiation, the wallet's authorization response and one-shot
// result redemption.
package verifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/labstack/echo/v4"

	vcsverifiable "github.com/provenid/vcbroker/pkg/doc/verifiable"
	"github.com/provenid/vcbroker/pkg/restapi/resterr"
	"github.com/provenid/vcbroker/pkg/restapi/v1/util"
	"github.com/provenid/vcbroker/pkg/service/oidc4vp"
)

const authorizationRequestPrefix = "openid-vc://"

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type oidc4VPService interface {
	InitiateOidcInteraction(ctx context.Context, req *oidc4vp.InitiateRequest) (*oidc4vp.PresentationRequest, error)
	VerifyAuthorizationResponse(ctx context.Context, response *oidc4vp.AuthorizationResponse) (*oidc4vp.VerificationResult, error)
	GetVerificationResult(ctx context.Context, id string) (*oidc4vp.VerificationResult, error)
	VerificationRedirectURI(result *oidc4vp.VerificationResult, uiBaseURL string) string
}

// Config holds configuration options for Controller.
type Config struct {
	OIDC4VPService oidc4VPService
	UIBaseURL      string
}

// Controller for the verifier HTTP API.
type Controller struct {
	service   oidc4VPService
	uiBaseURL string
}

// InitiateOidcInteractionRequest is the body of the initiate call.
type InitiateOidcInteractionRequest struct {
	ClaimSpec    *vcsverifiable.ClaimSpec `json:"claimSpec,omitempty"`
	State        string                   `json:"state,omitempty"`
	ResponseMode string                   `json:"responseMode,omitempty"`
	WebhookURL   string                   `json:"webhookUrl,omitempty"`
}

// InitiateOidcInteractionResponse carries the authorization request the
// wallet resolves.
type InitiateOidcInteractionResponse struct {
	AuthorizationRequest string `json:"authorizationRequest"`
	TxID                 string `json:"txID"`
}

// CheckAuthorizationResponseResult points the wallet at the next UI page.
type CheckAuthorizationResponseResult struct {
	RedirectURI string `json:"redirectUri"`
}

// NewController creates the verifier controller and registers its routes.
func NewController(router router, cfg Config) *Controller {
	c := &Controller{
		service:   cfg.OIDC4VPService,
		uiBaseURL: cfg.UIBaseURL,
	}

	router.POST("/verifier/interactions/initiate", c.InitiateOidcInteraction)
	router.POST("/verifier/interactions/authorization-response", c.CheckAuthorizationResponse)
	router.GET("/verifier/interactions/:txID/result", c.GetVerificationResult)

	return c
}

// InitiateOidcInteraction creates a presentation request and returns the
// authorization request object for the wallet.
func (c *Controller) InitiateOidcInteraction(ctx echo.Context) error {
	var body InitiateOidcInteractionRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	request, err := c.service.InitiateOidcInteraction(ctx.Request().Context(), &oidc4vp.InitiateRequest{
		ClaimSpec:    body.ClaimSpec,
		State:        body.State,
		ResponseMode: body.ResponseMode,
		WebhookURL:   body.WebhookURL,
	})
	if err != nil {
		return resterr.NewSystemError("oidc4vp.Service", "InitiateOidcInteraction", err)
	}

	authorizationRequest, err := buildAuthorizationRequest(request)
	if err != nil {
		return resterr.NewSystemError("verifier.Controller", "buildAuthorizationRequest", err)
	}

	return util.WriteOutput(ctx)(&InitiateOidcInteractionResponse{
		AuthorizationRequest: authorizationRequest,
		TxID:                 string(request.ID),
	}, nil)
}

// CheckAuthorizationResponse accepts the wallet's form-posted authorization
// response and returns the UI redirect for the outcome.
func (c *Controller) CheckAuthorizationResponse(ctx echo.Context) error {
	response, err := decodeAuthorizationResponse(ctx)
	if err != nil {
		return err
	}

	result, err := c.service.VerifyAuthorizationResponse(ctx.Request().Context(), response)
	if err != nil {
		if errors.Is(err, oidc4vp.ErrDataNotFound) {
			return resterr.NewCustomError(resterr.DoesntExist,
				fmt.Errorf("presentation request not found or expired: %w", err))
		}

		return resterr.NewSystemError("oidc4vp.Service", "VerifyAuthorizationResponse", err)
	}

	return util.WriteOutput(ctx)(&CheckAuthorizationResponseResult{
		RedirectURI: c.service.VerificationRedirectURI(result, c.uiBaseURL),
	}, nil)
}

// GetVerificationResult redeems a verification result. The result is
// invalidated on read.
func (c *Controller) GetVerificationResult(ctx echo.Context) error {
	txID := ctx.Param("txID")

	result, err := c.service.GetVerificationResult(ctx.Request().Context(), txID)
	if err != nil {
		if errors.Is(err, oidc4vp.ErrDataNotFound) {
			return resterr.NewCustomError(resterr.DoesntExist,
				fmt.Errorf("verification result not found or expired: %w", err))
		}

		return resterr.NewSystemError("oidc4vp.Service", "GetVerificationResult", err)
	}

	return util.WriteOutput(ctx)(result, nil)
}

func decodeAuthorizationResponse(ctx echo.Context) (*oidc4vp.AuthorizationResponse, error) {
	req := ctx.Request()

	headerContentType := req.Header.Get("Content-Type")
	if headerContentType != "application/x-www-form-urlencoded" {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "content-type",
			fmt.Errorf("content type is not application/x-www-form-urlencoded"))
	}

	if err := req.ParseForm(); err != nil {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "body", err)
	}

	response := &oidc4vp.AuthorizationResponse{}

	if err := decodeFormValue(&response.State, "state", req.PostForm); err != nil {
		return nil, err
	}

	if err := decodeFormValue(&response.IDToken, "id_token", req.PostForm); err != nil {
		return nil, err
	}

	if err := decodeFormValue(&response.VPToken, "vp_token", req.PostForm); err != nil {
		return nil, err
	}

	return response, nil
}

func decodeFormValue(output *string, valName string, values url.Values) error {
	val := values[valName]
	if len(val) == 0 {
		return resterr.NewValidationError(resterr.InvalidValue, valName, fmt.Errorf("value is missing"))
	}

	if len(val) > 1 {
		return resterr.NewValidationError(resterr.InvalidValue, valName, fmt.Errorf("value is duplicated"))
	}

	*output = val[0]

	return nil
}

func buildAuthorizationRequest(request *oidc4vp.PresentationRequest) (string, error) {
	q := url.Values{}
	q.Set("response_type", "id_token")
	q.Set("scope", "openid")
	q.Set("nonce", request.Nonce)
	q.Set("state", string(request.ID))
	q.Set("redirect_uri", request.RedirectURI)
	q.Set("response_mode", request.ResponseMode)

	if request.ClaimSpec != nil {
		claims, err := json.Marshal(request.ClaimSpec)
		if err != nil {
			return "", fmt.Errorf("marshal claim spec: %w", err)
		}

		q.Set("claims", string(claims))
	}

	return authorizationRequestPrefix + "?" + q.Encode(), nil
}
