// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Kinds of fetch failures. A [*FetchError] unwraps to exactly one of them.
var (
	// ErrNetwork indicates a transport-level failure: unreachable host,
	// DNS failure, timeout or a cancelled request.
	ErrNetwork = errors.New("network error")
	// ErrHTTPStatus indicates that the server answered with a non-2xx status.
	ErrHTTPStatus = errors.New("http status error")
	// ErrDecode indicates that the response body was not a JSON array.
	ErrDecode = errors.New("decode error")
)

// FetchError is the uniform failure value returned by [PackageAdapter].
type FetchError struct {
	// Kind is one of ErrNetwork, ErrHTTPStatus or ErrDecode.
	Kind error
	// StatusCode is the HTTP status for ErrHTTPStatus, zero otherwise.
	StatusCode int
	// Err is the underlying cause.
	Err error
}

// Error returns a human-readable message suitable for display. The HTTP
// status code, when present, is always part of the message.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("http status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *FetchError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newNetworkError(err error) *FetchError {
	return &FetchError{Kind: ErrNetwork, Err: err}
}

func newStatusError(statusCode int, detail string) *FetchError {
	return &FetchError{Kind: ErrHTTPStatus, StatusCode: statusCode, Err: errors.New(detail)}
}

func newDecodeError(err error) *FetchError {
	return &FetchError{Kind: ErrDecode, Err: err}
}
