// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLen bounds how much of an error response body ends up in the
// message shown to the user.
const maxErrorBodyLen = 200

// mapHTTPError returns nil for 2xx responses and an ErrHTTPStatus
// [*FetchError] otherwise. The message carries the status code and the
// trimmed response body, or the standard status text when the body is empty.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return newStatusError(resp.StatusCode(), truncateBody(body))
}

// truncateBody cuts body to at most maxErrorBodyLen bytes without splitting a
// UTF-8 sequence.
func truncateBody(body string) string {
	if len(body) <= maxErrorBodyLen {
		return body
	}
	n := maxErrorBodyLen
	for n > 0 && !utf8.RuneStart(body[n]) {
		n--
	}
	return body[:n] + "..."
}
