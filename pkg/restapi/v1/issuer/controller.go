/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package issuer_test -source=controller.go -mock_names oidc4VCIService=MockOIDC4VCIService

// Package issuer exposes the issuance side of the broker over HTTP: offer
// creation, subject binding, the authorization step and finalize.
package issuer

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/provenid/vcbroker/pkg/restapi/resterr"
	"github.com/provenid/vcbroker/pkg/restapi/v1/util"
	"github.com/provenid/vcbroker/pkg/service/oidc4vci"
)

type router interface {
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type oidc4VCIService interface {
	InitiateIssuance(ctx context.Context, req *oidc4vci.InitiateIssuanceRequest, preAuthorized bool) (*oidc4vci.InitiationRequest, error)
	StartIssuerInitiatedIssuance(ctx context.Context, req *oidc4vci.InitiationRequest) (oidc4vci.SessionID, error)
	StartWalletInitiatedIssuance(ctx context.Context, req *oidc4vci.WalletInitiatedIssuanceRequest) (oidc4vci.SessionID, error)
	ContinueIssuerInitiatedIssuance(ctx context.Context, sessionID oidc4vci.SessionID, subjectDID, userID, pin string) (*oidc4vci.Session, error)
	Authorize(ctx context.Context, sessionID oidc4vci.SessionID) (string, error)
	FinalizeIssuance(ctx context.Context, sessionID oidc4vci.SessionID, code, pin string) (*oidc4vci.Session, error)
}

// Config holds configuration options for Controller.
type Config struct {
	OIDC4VCIService oidc4VCIService
}

// Controller for the issuer HTTP API.
type Controller struct {
	service oidc4VCIService
}

// InitiateIssuanceRequest is the body of the initiate-issuance call.
type InitiateIssuanceRequest struct {
	IssuerURI       string   `json:"issuerUri"`
	CredentialTypes []string `json:"credentialTypes"`
	PreAuthorized   bool     `json:"preAuthorized"`
	UserPinRequired bool     `json:"userPinRequired"`
}

// InitiateIssuanceResponse carries the wallet offer and the created session.
type InitiateIssuanceResponse struct {
	OfferURL  string `json:"offerUrl"`
	SessionID string `json:"sessionId"`
	UserPin   string `json:"userPin,omitempty"`
}

// WalletInitiatedIssuanceResponse carries the session created for a
// wallet-initiated flow.
type WalletInitiatedIssuanceResponse struct {
	SessionID string `json:"sessionId"`
}

// ContinueIssuanceRequest binds the subject to the session.
type ContinueIssuanceRequest struct {
	SubjectDID string `json:"subjectDid"`
	UserID     string `json:"userId"`
	Pin        string `json:"pin,omitempty"`
}

// AuthorizeResponse carries the issuer's authorize redirect.
type AuthorizeResponse struct {
	RedirectURI string `json:"redirectUri"`
}

// FinalizeIssuanceRequest carries the code obtained from the issuer.
type FinalizeIssuanceRequest struct {
	Code string `json:"code"`
	Pin  string `json:"pin,omitempty"`
}

// NewController creates the issuer controller and registers its routes.
func NewController(router router, cfg Config) *Controller {
	c := &Controller{
		service: cfg.OIDC4VCIService,
	}

	router.POST("/issuer/interactions/initiate-issuance", c.InitiateIssuance)
	router.POST("/issuer/interactions/wallet-initiated", c.WalletInitiatedIssuance)
	router.POST("/issuer/interactions/:sessionID/continue", c.ContinueIssuance)
	router.POST("/issuer/interactions/:sessionID/authorize", c.Authorize)
	router.POST("/issuer/interactions/:sessionID/finalize", c.FinalizeIssuance)

	return c
}

// InitiateIssuance builds an offer and caches a session for it.
func (c *Controller) InitiateIssuance(ctx echo.Context) error {
	var body InitiateIssuanceRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()

	initiation, err := c.service.InitiateIssuance(reqCtx, &oidc4vci.InitiateIssuanceRequest{
		IssuerURI:       body.IssuerURI,
		CredentialTypes: body.CredentialTypes,
		UserPinRequired: body.UserPinRequired,
	}, body.PreAuthorized)
	if err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "requestBody", err)
	}

	sessionID, err := c.service.StartIssuerInitiatedIssuance(reqCtx, initiation)
	if err != nil {
		return resterr.NewSystemError("oidc4vci.Service", "StartIssuerInitiatedIssuance", err)
	}

	return util.WriteOutput(ctx)(&InitiateIssuanceResponse{
		OfferURL:  initiation.OfferURL,
		SessionID: string(sessionID),
		UserPin:   initiation.UserPin,
	}, nil)
}

// WalletInitiatedIssuance creates a session for a wallet that approaches
// the issuer without an offer.
func (c *Controller) WalletInitiatedIssuance(ctx echo.Context) error {
	var body oidc4vci.WalletInitiatedIssuanceRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	sessionID, err := c.service.StartWalletInitiatedIssuance(ctx.Request().Context(), &body)
	if err != nil {
		return mapServiceError(err, "StartWalletInitiatedIssuance")
	}

	return util.WriteOutput(ctx)(&WalletInitiatedIssuanceResponse{SessionID: string(sessionID)}, nil)
}

// ContinueIssuance binds the subject DID and user to the session. A
// pre-authorized session is finalized in the same call.
func (c *Controller) ContinueIssuance(ctx echo.Context) error {
	var body ContinueIssuanceRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	session, err := c.service.ContinueIssuerInitiatedIssuance(ctx.Request().Context(),
		oidc4vci.SessionID(ctx.Param("sessionID")), body.SubjectDID, body.UserID, body.Pin)
	if err != nil {
		return mapServiceError(err, "ContinueIssuerInitiatedIssuance")
	}

	return util.WriteOutput(ctx)(session, nil)
}

// Authorize runs the pushed-authorization step for an authorization-code
// session and returns the issuer's authorize redirect.
func (c *Controller) Authorize(ctx echo.Context) error {
	redirectURI, err := c.service.Authorize(ctx.Request().Context(),
		oidc4vci.SessionID(ctx.Param("sessionID")))
	if err != nil {
		return mapServiceError(err, "Authorize")
	}

	return util.WriteOutput(ctx)(&AuthorizeResponse{RedirectURI: redirectURI}, nil)
}

// FinalizeIssuance exchanges the code and fetches the credentials.
func (c *Controller) FinalizeIssuance(ctx echo.Context) error {
	var body FinalizeIssuanceRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	session, err := c.service.FinalizeIssuance(ctx.Request().Context(),
		oidc4vci.SessionID(ctx.Param("sessionID")), body.Code, body.Pin)
	if err != nil {
		return mapServiceError(err, "FinalizeIssuance")
	}

	return util.WriteOutput(ctx)(session, nil)
}

func mapServiceError(err error, operation string) error {
	switch {
	case errors.Is(err, oidc4vci.ErrSessionNotFound):
		return resterr.NewCustomError(resterr.DoesntExist, err)

	case errors.Is(err, oidc4vci.ErrWrongFlow),
		errors.Is(err, oidc4vci.ErrUserNotConfirmed),
		errors.Is(err, oidc4vci.ErrSubjectAlreadyBound),
		errors.Is(err, oidc4vci.ErrNoSubjectBound):
		return resterr.NewCustomError(resterr.InvalidState, err)

	case errors.Is(err, oidc4vci.ErrIssuerUnreachable),
		errors.Is(err, oidc4vci.ErrAuthorizationRejected):
		return resterr.NewCustomError(resterr.UpstreamRejected, err)

	default:
		return resterr.NewSystemError("oidc4vci.Service", operation, err)
	}
}
