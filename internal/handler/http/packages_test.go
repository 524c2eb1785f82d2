// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-safari-sync/internal/store"
	"github.com/MKhiriev/go-safari-sync/internal/validators"
	"github.com/MKhiriev/go-safari-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func catalogue() []models.SafariPackage {
	return []models.SafariPackage{
		{ID: 1, Name: "Serengeti", Description: "Plains", GroupSizeMin: 2, GroupSizeMax: 2},
		{ID: 2, Name: "Masai Mara", GroupSizeMin: 2, GroupSizeMax: 8, Picture: strPtr("/media/mara.jpg")},
	}
}

func TestListPackages_Success(t *testing.T) {
	for _, path := range []string{"/api/safari-packages", "/api/safari-packages/"} {
		t.Run(path, func(t *testing.T) {
			stub := &stubCatalogueService{packages: catalogue()}
			router := newRouterForTest(t, stub, "")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, 1, stub.calls)

			var got []map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Len(t, got, 2)
			assert.Equal(t, "Serengeti", got[0]["name"])
			assert.Equal(t, float64(2), got[0]["group_size_min"])
			assert.Nil(t, got[0]["picture"])
			assert.Equal(t, "/media/mara.jpg", got[1]["picture"])
		})
	}
}

func TestListPackages_EmptyCatalogueIsEmptyArray(t *testing.T) {
	router := newRouterForTest(t, &stubCatalogueService{packages: []models.SafariPackage{}}, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/safari-packages", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListPackages_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "unreadable fixture",
			err:        fmt.Errorf("error listing safari packages: %w", store.ErrReadingPackagesFile),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "invalid catalogue",
			err:        fmt.Errorf("invalid safari package catalogue: %w", validators.ErrGroupSizeRange),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "deadline exceeded",
			err:        fmt.Errorf("error listing safari packages: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouterForTest(t, &stubCatalogueService{err: tt.err}, "")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/safari-packages", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
			assert.Equal(t, tt.err.Error(), rec.Body.String())
		})
	}
}

func TestListPackages_GzipWhenAccepted(t *testing.T) {
	router := newRouterForTest(t, &stubCatalogueService{packages: catalogue()}, "")

	req := httptest.NewRequest(http.MethodGet, "/api/safari-packages", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	gr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gr)
	require.NoError(t, err)

	var got []models.SafariPackage
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, catalogue(), got)
}
