// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-safari-sync/internal/config"
	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/utils"
	"github.com/MKhiriev/go-safari-sync/models"
)

// PackagesPath is the catalogue endpoint relative to the base URL.
const PackagesPath = "/api/safari-packages"

type httpPackageAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	logger  *logger.Logger
}

// NewHTTPPackageAdapter constructs an HTTP/REST implementation of
// [PackageAdapter]. It normalises and validates adapterCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPPackageAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (PackageAdapter, error) {
	baseURL, err := NormalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(logger)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpPackageAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

// NormalizeBaseURL adds a missing "http://" scheme, requires a host and drops
// any trailing slash so that paths can be appended verbatim.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}
	u.RawQuery = ""
	u.Fragment = ""

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchPackages implements [PackageAdapter]. It GETs
// GET /api/safari-packages and decodes the JSON array leniently (see
// decodePackages).
func (h *httpPackageAdapter) FetchPackages(ctx context.Context) ([]models.SafariPackage, error) {
	log := h.logger.With().Str("url", h.baseURL+PackagesPath)
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		log = log.Str("request_id", requestID)
	}
	l := log.Logger()

	start := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(PackagesPath)
	if err != nil {
		l.Warn().Err(err).Dur("duration", time.Since(start)).Msg("fetch packages: transport failure")
		return nil, newNetworkError(err)
	}

	if err = mapHTTPError(resp); err != nil {
		l.Warn().Err(err).Int("status", resp.StatusCode()).Dur("duration", time.Since(start)).Msg("fetch packages: unexpected status")
		return nil, err
	}

	packages, err := decodePackages(resp.Body())
	if err != nil {
		l.Warn().Err(err).Int("status", resp.StatusCode()).Msg("fetch packages: undecodable body")
		return nil, newDecodeError(err)
	}

	l.Debug().
		Int("status", resp.StatusCode()).
		Int("count", len(packages)).
		Dur("duration", time.Since(start)).
		Msg("fetch packages: done")

	return packages, nil
}
