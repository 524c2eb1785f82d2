// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/store"
	"github.com/MKhiriev/go-safari-sync/models"
)

// Services groups the services of the catalogue server.
type Services struct {
	CatalogueService CatalogueService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	catalogueService, err := NewCatalogueService(storages.PackageStorage, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating catalogue service: %w", err)
	}

	return &Services{
		CatalogueService: catalogueService,
		AppInfoService:   NewAppInfoService(buildInfo, logger),
	}, nil
}
