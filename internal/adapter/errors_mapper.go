// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
)

// mapAPIError prefixes err with the operation name. An UNAUTHORIZED
// response additionally matches ErrUnauthorized; the *apiclient.Error
// stays reachable through errors.As in every case.
func mapAPIError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, apiclient.ErrUnauthorized) {
		return fmt.Errorf("%s: %w: %w", op, ErrUnauthorized, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// invalidResponse builds the error for a body that decoded but does not
// carry what the provider promised. It is classified UNKNOWN_ERROR.
func invalidResponse(provider, detail string) error {
	return &apiclient.Error{
		Code:        apiclient.CodeUnknown,
		Message:     fmt.Sprintf("%s: %s", provider, detail),
		UserMessage: apiclient.CodeUnknown.UserMessage(),
		Err:         ErrInvalidResponse,
	}
}
