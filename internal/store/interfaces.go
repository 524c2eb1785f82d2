// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-safari-sync/models"
)

// PackageStorage is the read side of the safari package catalogue.
type PackageStorage interface {
	// ListPackages returns every package in storage order.
	ListPackages(ctx context.Context) ([]models.SafariPackage, error)
}
