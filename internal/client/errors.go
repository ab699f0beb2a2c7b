// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/go-quran-keeper/internal/service"
)

var (
	// ErrUsage is returned for a missing command or bad arguments. The usage
	// text has already been written when it is returned.
	ErrUsage = errors.New("invalid usage")

	// ErrUnknownCommand is returned for a command name the client does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrOffline is returned by commands that need the bookmark server when
	// it cannot be reached.
	ErrOffline = errors.New("bookmark server is unreachable")
)

// Message returns the text shown to the user for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUsage), errors.Is(err, ErrUnknownCommand):
		return err.Error()
	case errors.Is(err, ErrOffline):
		return "the bookmark server is unreachable; local changes will sync once it is back"
	}
	return service.UserMessage(err)
}
