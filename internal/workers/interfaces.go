// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs for the lifetime of a
// session.
package workers

import "context"

// Worker is a background job. Run must not block; Stop waits for the job to
// exit.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
