// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quran-keeper/internal/config"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
)

func testServerApp() config.ServerApp {
	return config.ServerApp{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "quran-keeper-test",
		TokenDuration: time.Hour,
	}
}

// ─────────────────────────────────────────────
// CreateToken
// ─────────────────────────────────────────────

func TestAuthService_CreateToken_RoundTrip(t *testing.T) {
	svc := NewAuthService(testServerApp(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, " owner-1 ")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", token.OwnerID)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", parsed.OwnerID)
}

func TestAuthService_CreateToken_EmptyOwner(t *testing.T) {
	svc := NewAuthService(testServerApp(), logger.Nop())

	_, err := svc.CreateToken(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyOwnerID)
}

func TestAuthService_CreateToken_NoDuration_Fails(t *testing.T) {
	cfg := testServerApp()
	cfg.TokenDuration = 0
	svc := NewAuthService(cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), "owner-1")

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ─────────────────────────────────────────────
// ParseToken
// ─────────────────────────────────────────────

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	ctx := context.Background()

	otherKey := testServerApp()
	otherKey.TokenSignKey = "another-key"
	foreignToken, err := NewAuthService(otherKey, logger.Nop()).CreateToken(ctx, "owner-1")
	require.NoError(t, err)

	otherIssuer := testServerApp()
	otherIssuer.TokenIssuer = "somebody-else"
	foreignIssuer, err := NewAuthService(otherIssuer, logger.Nop()).CreateToken(ctx, "owner-1")
	require.NoError(t, err)

	shortLived := testServerApp()
	shortLived.TokenDuration = time.Millisecond
	expired, err := NewAuthService(shortLived, logger.Nop()).CreateToken(ctx, "owner-1")
	require.NoError(t, err)
	// jwt сверяет exp с точностью до секунды
	time.Sleep(1100 * time.Millisecond)

	svc := NewAuthService(testServerApp(), logger.Nop())

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"empty", ""},
		{"wrong key", foreignToken.SignedString},
		{"wrong issuer", foreignIssuer.SignedString},
		{"expired", expired.SignedString},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tc.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
