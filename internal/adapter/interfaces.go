// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// safari package catalogue API.
//
// The primary abstraction is [PackageAdapter], which decouples the sync
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPPackageAdapter]) built on resty.
//
// Every failure is returned as a [*FetchError] whose kind ([ErrNetwork],
// [ErrHTTPStatus], [ErrDecode]) can be selected with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-safari-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/package_adapter_mock.go -package=mock

// PackageAdapter fetches the full safari package collection from the server.
type PackageAdapter interface {
	// FetchPackages issues a single GET for the package collection and returns
	// the records in server order. It never retries and keeps no cache.
	// Any failure is returned as a *FetchError.
	FetchPackages(ctx context.Context) ([]models.SafariPackage, error)
}
