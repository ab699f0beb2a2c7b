// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "apiclient_requests_total",
	Help: "Number of upstream API attempts by outcome code",
}, []string{"client", "code"})

var retriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "apiclient_retries_total",
	Help: "Number of retries scheduled after a retryable failure",
}, []string{"client"})

var breakerOpen = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "apiclient_breaker_open",
	Help: "1 while the named circuit breaker is open",
}, []string{"breaker"})
