// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
)

// testResilience retries quickly so failure paths do not slow the suite.
func testResilience() Resilience {
	return Resilience{
		Retry:   apiclient.RetryPolicy{MaxRetries: 2, Delay: time.Millisecond},
		Breaker: apiclient.BreakerConfig{Threshold: 3, ResetTimeout: time.Minute},
	}
}
