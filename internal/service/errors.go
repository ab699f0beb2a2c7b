// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidBookmark     = errors.New("invalid bookmark")
	ErrEmptyOwnerID        = errors.New("owner id is empty")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrSyncIncomplete is returned by Reconcile when some pushes or queued
	// operations failed. The failed work stays queued for the next pass.
	ErrSyncIncomplete = errors.New("sync finished with failures")

	ErrNoPrayerTimesProviders = errors.New("no prayer times providers configured")
)
