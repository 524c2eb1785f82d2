// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(logger.Nop())
	client2 := NewHTTPClient(logger.Nop())

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_SetsGeneratedRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(logger.Nop())
	_, err := client.R().SetContext(context.Background()).Get(srv.URL)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(got)
	assert.NoError(t, parseErr, "expected a uuid request id, got %q", got)
}

func TestHTTPClient_PropagatesRequestIDFromContext(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(logger.Nop())
	ctx := WithRequestID(context.Background(), "req-42")
	_, err := client.R().SetContext(ctx).Get(srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "req-42", got)
}

func TestHTTPClient_DoesNotRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewHTTPClient(logger.Nop())
	resp, err := client.R().Get(srv.URL)
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, 1, calls)
}
