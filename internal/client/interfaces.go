// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable command-line client.
type Client interface {
	// Run executes the command named by args[0] and returns its error.
	Run(ctx context.Context, args []string) error
}
