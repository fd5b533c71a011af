/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package webhook delivers lifecycle events to an HTTP endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/provenid/vcbroker/internal/logfields"
	"github.com/provenid/vcbroker/pkg/event/spi"
)

var logger = log.New("event-webhook")

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Publisher posts events to a webhook URL, retrying transient failures.
type Publisher struct {
	url        string
	httpClient httpClient
	retries    uint64
	interval   time.Duration
}

// Opt configures the publisher.
type Opt func(p *Publisher)

// WithRetries sets the number of delivery attempts after the first failure.
func WithRetries(n uint64) Opt {
	return func(p *Publisher) {
		p.retries = n
	}
}

// WithRetryInterval sets the pause between delivery attempts.
func WithRetryInterval(d time.Duration) Opt {
	return func(p *Publisher) {
		p.interval = d
	}
}

// NewPublisher creates a webhook publisher.
func NewPublisher(url string, client httpClient, opts ...Opt) *Publisher {
	p := &Publisher{
		url:        url,
		httpClient: client,
		retries:    3,
		interval:   time.Second,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Publish posts the given events to the webhook URL one by one.
func (p *Publisher) Publish(ctx context.Context, _ string, events ...*spi.Event) error {
	for _, event := range events {
		if err := p.post(ctx, event); err != nil {
			return fmt.Errorf("publish event %s: %w", event.Type, err)
		}
	}

	return nil
}

func (p *Publisher) post(ctx context.Context, event *spi.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	task := func() error {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
		if reqErr != nil {
			return backoff.Permanent(reqErr)
		}

		req.Header.Set("Content-Type", "application/json")

		resp, doErr := p.httpClient.Do(req)
		if doErr != nil {
			return doErr
		}

		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil {
				logger.Warnc(ctx, "Failed to close response body", log.WithError(closeErr))
			}
		}()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
			return fmt.Errorf("webhook returned status %d", resp.StatusCode)
		}

		return nil
	}

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.interval), p.retries),
		func(retryErr error, t time.Duration) {
			logger.Warnc(ctx, "Failed to deliver event, will sleep before trying again.",
				logfields.WithWebhookURL(p.url), logfields.WithSleep(t), log.WithError(retryErr))
		},
	)
}
