// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
)

// Resilience is the retry and breaker setup of one upstream.
type Resilience struct {
	Retry   apiclient.RetryPolicy
	Breaker apiclient.BreakerConfig
}

// DefaultResilience returns three retries from one second and a breaker
// that opens after three failed calls for one minute.
func DefaultResilience() Resilience {
	return Resilience{
		Retry:   apiclient.DefaultRetryPolicy(),
		Breaker: apiclient.DefaultBreakerConfig(),
	}
}

// upstream bundles what every adapter needs to make a guarded call.
type upstream struct {
	client  *apiclient.Client
	breaker *apiclient.CircuitBreaker
	retry   apiclient.RetryPolicy
}

func newUpstream(cfg apiclient.Config, res Resilience, log *logger.Logger) (upstream, error) {
	client, err := apiclient.New(cfg, log)
	if err != nil {
		return upstream{}, err
	}

	retry := res.Retry
	retry.Name = client.Name()

	return upstream{
		client:  client,
		breaker: apiclient.NewCircuitBreaker(client.Name(), res.Breaker, log),
		retry:   retry,
	}, nil
}
