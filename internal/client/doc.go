// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line bookmark client: bookmark
// commands backed by the offline-first synchronizer, lookups of prayer
// times, hadiths and verses, and a watch mode that keeps the background
// sync running.
package client
