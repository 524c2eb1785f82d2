// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the per-request correlation id on outbound calls.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own connection pool.
//
// The client never retries on its own, routes resty's internal diagnostics
// to log and stamps every request with an X-Request-ID header. The id is taken
// from the request context (see [WithRequestID]) or generated when absent.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetLogger(restyLogger{log: log}).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(RequestIDHeader) != "" {
				return nil
			}
			requestID, ok := GetRequestIDFromContext(req.Context())
			if !ok {
				requestID = NewRequestID()
			}
			req.SetHeader(RequestIDHeader, requestID)
			return nil
		})

	return &HTTPClient{Client: client}
}

// restyLogger adapts *logger.Logger to resty.Logger.
type restyLogger struct {
	log *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.log.Error().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.log.Warn().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.log.Debug().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}
