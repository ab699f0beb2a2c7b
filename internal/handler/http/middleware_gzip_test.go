// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGzipRequest(t *testing.T) {
	tests := []struct {
		name            string
		body            []byte
		contentEncoding string
		wantStatus      int
		wantBody        string
	}{
		{
			name:            "gzip body is decoded",
			body:            gzipBytes(t, `{"bookmarks":[]}`),
			contentEncoding: "gzip",
			wantStatus:      http.StatusOK,
			wantBody:        `{"bookmarks":[]}`,
		},
		{
			name:       "plain body passes through",
			body:       []byte(`plain`),
			wantStatus: http.StatusOK,
			wantBody:   `plain`,
		},
		{
			name:            "broken gzip is rejected",
			body:            []byte("definitely not gzip"),
			contentEncoding: "gzip",
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody, gotEncoding string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				gotBody = string(b)
				gotEncoding = r.Header.Get("Content-Encoding")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPut, "/api/bookmarks", bytes.NewReader(tt.body))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGzipRequest(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, gotBody)
				assert.Empty(t, gotEncoding, "Content-Encoding снимается после распаковки")
			}
		})
	}
}

func TestWithGzipRequest_ReaderReusedAcrossRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_, _ = w.Write(b)
	})
	middleware := withGzipRequest(next)

	for i := range 5 {
		payload := strings.Repeat("x", i+1)
		req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(gzipBytes(t, payload)))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		middleware.ServeHTTP(rr, req)

		assert.Equal(t, payload, rr.Body.String())
	}
}
