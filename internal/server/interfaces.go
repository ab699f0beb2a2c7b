// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the transports managed here.
type Server interface {
	// RunServer starts serving and blocks until shutdown completes.
	RunServer()

	// Shutdown gracefully stops serving.
	Shutdown()
}
