// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-safari-sync/models"
)

// CatalogueService serves the safari package list to HTTP clients.
type CatalogueService interface {
	// ListPackages returns every package of the catalogue in storage order.
	// An invalid catalogue is reported as an error rather than served.
	ListPackages(ctx context.Context) ([]models.SafariPackage, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	// GetAppVersion returns the build version, "N/A" when unknown.
	GetAppVersion(ctx context.Context) string
}
