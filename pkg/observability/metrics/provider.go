/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "vcbroker"

	// Controller operations.
	Controller                    = "controller"
	ControllerCheckAuthRespMetric = "controller_checkAuthResponse_seconds"

	// Service operations.
	Service                  = "service"
	VerifyPresentationMetric = "service_verifyPresentation_seconds"
	FinalizeIssuanceMetric   = "service_finalizeIssuance_seconds"
	AuthorizationStepMetric  = "service_authorizationStep_seconds"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	CheckAuthorizationResponseTime(value time.Duration)
	VerifyPresentationTime(value time.Duration)
	FinalizeIssuanceTime(value time.Duration)
	AuthorizationStepTime(value time.Duration)
}
