// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestOwnerIDCtxKey(t *testing.T) {
	if OwnerIDCtxKey.String() != "ownerID" {
		t.Errorf("expected 'ownerID', got '%s'", OwnerIDCtxKey.String())
	}
}

func TestGetOwnerIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{"present", WithOwnerID(context.Background(), "owner-1"), "owner-1", true},
		{"missing", context.Background(), "", false},
		{"empty", WithOwnerID(context.Background(), ""), "", false},
		{"wrong type", context.WithValue(context.Background(), OwnerIDCtxKey, 42), "", false},
		// ключ другого типа не должен совпадать
		{"plain string key", context.WithValue(context.Background(), "ownerID", "owner-1"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetOwnerIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
