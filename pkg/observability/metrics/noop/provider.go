/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/provenid/vcbroker/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the Metrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) CheckAuthorizationResponseTime(_ time.Duration) {}
func (n *NoMetrics) VerifyPresentationTime(_ time.Duration)         {}
func (n *NoMetrics) FinalizeIssuanceTime(_ time.Duration)           {}
func (n *NoMetrics) AuthorizationStepTime(_ time.Duration)          {}
