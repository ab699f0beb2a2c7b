// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
)

// watch keeps the background sync running until ctx is cancelled.
func (a *App) watch(ctx context.Context, _ []string) error {
	fmt.Fprintln(a.out, "watching for changes, press Ctrl+C to stop")

	a.workers.Run(ctx)
	<-ctx.Done()
	a.workers.Stop()

	fmt.Fprintln(a.out, "stopped")
	return nil
}
