// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the bookmark server transports: the chi HTTP API and
// the gRPC health service. Both stop gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
