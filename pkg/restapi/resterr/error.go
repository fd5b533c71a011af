/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrDataNotFound is returned by stores and session managers when an entry is
// absent from the cache. Expired entries are indistinguishable from entries
// that never existed.
var ErrDataNotFound = errors.New("data not found")

type ErrorCode string

const (
	SystemError        ErrorCode = "system-error"
	InvalidValue       ErrorCode = "invalid-value"
	DoesntExist        ErrorCode = "doesnt-exist"
	InvalidState       ErrorCode = "invalid-state"
	UpstreamRejected   ErrorCode = "upstream-rejected"
	ConditionNotMet    ErrorCode = "condition-not-met"
	OIDCInvalidRequest ErrorCode = "oidc-invalid-request"
)

func (c ErrorCode) Name() string {
	return string(c)
}

type CustomError struct {
	Code            ErrorCode
	IncorrectValue  string
	FailedOperation string
	Component       string
	Err             error
}

func NewSystemError(component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		FailedOperation: failedOperation,
		Component:       component,
		Err:             err,
	}
}

func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

func (e *CustomError) Error() string {
	if e.Code == SystemError {
		return fmt.Sprintf("%s[%s, %s]: %v", SystemError, e.Component, e.FailedOperation, e.Err)
	}

	if e.IncorrectValue != "" {
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.IncorrectValue, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg maps the error code to an HTTP status and a client-visible
// response body.
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	var code int

	switch e.Code { //nolint:exhaustive
	case SystemError:
		return http.StatusInternalServerError, map[string]interface{}{
			"code":      SystemError.Name(),
			"component": e.Component,
			"operation": e.FailedOperation,
			"message":   e.Err.Error(),
		}

	case DoesntExist:
		code = http.StatusNotFound

	case InvalidState:
		code = http.StatusConflict

	case UpstreamRejected:
		code = http.StatusBadGateway

	case ConditionNotMet:
		code = http.StatusPreconditionFailed

	default:
		code = http.StatusBadRequest
	}

	m := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.Err.Error(),
	}

	if e.IncorrectValue != "" {
		m["incorrectValue"] = e.IncorrectValue
	}

	return code, m
}
