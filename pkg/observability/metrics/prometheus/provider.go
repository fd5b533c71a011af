/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/provenid/vcbroker/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	if err := pp.httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("start metrics HTTP server: %w", err)
	}

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the protocol engine metrics.
type PromMetrics struct {
	checkAuthRespTime prometheus.Histogram
	verifyPresTime    prometheus.Histogram
	finalizeIssTime   prometheus.Histogram
	authorizationTime prometheus.Histogram
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		checkAuthRespTime: newCheckAuthRespTime(),
		verifyPresTime:    newVerifyPresentationTime(),
		finalizeIssTime:   newFinalizeIssuanceTime(),
		authorizationTime: newAuthorizationStepTime(),
	}

	registerMetrics(pm)

	return pm
}

// CheckAuthorizationResponseTime records the time for CheckAuthorizationResponse controller endpoint call.
func (pm *PromMetrics) CheckAuthorizationResponseTime(value time.Duration) {
	pm.checkAuthRespTime.Observe(value.Seconds())

	logger.Debug("CheckAuthorizationResponse controller endpoint time", log.WithDuration(value))
}

// VerifyPresentationTime records the time for the verification policy pipeline run.
func (pm *PromMetrics) VerifyPresentationTime(value time.Duration) {
	pm.verifyPresTime.Observe(value.Seconds())

	logger.Debug("VerifyPresentation service call time", log.WithDuration(value))
}

// FinalizeIssuanceTime records the time for the issuance finalize service call.
func (pm *PromMetrics) FinalizeIssuanceTime(value time.Duration) {
	pm.finalizeIssTime.Observe(value.Seconds())

	logger.Debug("FinalizeIssuance service call time", log.WithDuration(value))
}

// AuthorizationStepTime records the time for the issuance authorization step.
func (pm *PromMetrics) AuthorizationStepTime(value time.Duration) {
	pm.authorizationTime.Observe(value.Seconds())

	logger.Debug("ExecuteAuthorizationStep service call time", log.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.checkAuthRespTime, pm.verifyPresTime, pm.finalizeIssTime, pm.authorizationTime,
	)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCheckAuthRespTime() prometheus.Histogram {
	return newHistogram(
		metrics.Controller, metrics.ControllerCheckAuthRespMetric,
		"The time (in seconds) it takes to execute checkAuthorizationResponse controller endpoint call.",
		nil,
	)
}

func newVerifyPresentationTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.VerifyPresentationMetric,
		"The time (in seconds) it takes to run the verification policy pipeline.",
		nil,
	)
}

func newFinalizeIssuanceTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.FinalizeIssuanceMetric,
		"The time (in seconds) it takes to execute the FinalizeIssuance service call.",
		nil,
	)
}

func newAuthorizationStepTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.AuthorizationStepMetric,
		"The time (in seconds) it takes to execute the ExecuteAuthorizationStep service call.",
		nil,
	)
}
