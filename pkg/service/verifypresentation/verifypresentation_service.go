/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package verifypresentation -source=verifypresentation_service.go -mock_names policyResolver=MockPolicyResolver,metricsProvider=MockMetricsProvider

package verifypresentation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	vdrapi "github.com/hyperledger/aries-framework-go/pkg/framework/aries/api/vdr"
	"github.com/piprate/json-gold/ld"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/provenid/vcbroker/internal/logfields"
	vcsverifiable "github.com/provenid/vcbroker/pkg/doc/verifiable"
	"github.com/provenid/vcbroker/pkg/observability/metrics"
	noopMetricsProvider "github.com/provenid/vcbroker/pkg/observability/metrics/noop"

	"github.com/hyperledger/aries-framework-go/pkg/doc/verifiable"
)

var logger = log.New("verifypresentation-service")

// PolicyCheck is a named, stateless predicate over a presented presentation.
type PolicyCheck interface {
	Name() string
	Check(ctx context.Context, presentation *verifiable.Presentation, opts *Options) error
}

// PolicySpec identifies an extra policy to append after the mandatory set.
type PolicySpec struct {
	Name     string          `json:"name"`
	Argument json.RawMessage `json:"argument,omitempty"`
}

type policyResolver interface {
	Resolve(name string, argument json.RawMessage) (PolicyCheck, error)
}

// Options carries the context of the original presentation request.
type Options struct {
	Challenge string
	Domain    string
	ClaimSpec *vcsverifiable.ClaimSpec
}

// PolicyCheckResult holds the outcome of a single policy run.
type PolicyCheckResult struct {
	Check string `json:"check"`
	Error string `json:"error,omitempty"`
}

type Config struct {
	VDR            vdrapi.Registry
	DocumentLoader ld.DocumentLoader
	PolicyResolver policyResolver
	ExtraPolicies  []*PolicySpec
	Metrics        metricsProvider
}

type metricsProvider interface {
	VerifyPresentationTime(value time.Duration)
}

type Service struct {
	checks  []PolicyCheck
	metrics metricsProvider
}

// New resolves the configured extra policies once, up front, so a
// misconfigured policy fails at startup rather than on every verification.
func New(config *Config) (*Service, error) {
	metrics := config.Metrics
	if metrics == nil {
		metrics = noopMetricsProvider.GetMetrics()
	}

	checks := []PolicyCheck{
		NewProofCheck(config.VDR, config.DocumentLoader),
		NewChallengeCheck(),
		NewClaimsCheck(config.DocumentLoader),
	}

	for _, spec := range config.ExtraPolicies {
		check, err := config.PolicyResolver.Resolve(spec.Name, spec.Argument)
		if err != nil {
			return nil, fmt.Errorf("resolve policy %q: %w", spec.Name, err)
		}

		checks = append(checks, check)
	}

	return &Service{
		checks:  checks,
		metrics: metrics,
	}, nil
}

// VerifyPresentation runs every configured policy against the presentation.
// All policies run; the aggregate validity is the conjunction of the
// per-policy outcomes.
func (s *Service) VerifyPresentation(
	ctx context.Context,
	presentation *verifiable.Presentation,
	opts *Options,
) (bool, []PolicyCheckResult, error) {
	startTime := time.Now()

	defer func() {
		s.metrics.VerifyPresentationTime(time.Since(startTime))
	}()

	if opts == nil {
		opts = &Options{}
	}

	valid := true

	results := make([]PolicyCheckResult, 0, len(s.checks))

	for _, check := range s.checks {
		result := PolicyCheckResult{Check: check.Name()}

		if err := check.Check(ctx, presentation, opts); err != nil {
			valid = false
			result.Error = err.Error()

			logger.Debugc(ctx, "policy check failed",
				logfields.WithPolicy(check.Name()), log.WithError(err))
		}

		results = append(results, result)
	}

	return valid, results, nil
}
