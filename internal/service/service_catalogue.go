// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/store"
	"github.com/MKhiriev/go-safari-sync/internal/validators"
	"github.com/MKhiriev/go-safari-sync/models"
)

type catalogueService struct {
	packageStorage store.PackageStorage
	validator      validators.Validator

	logger *logger.Logger
}

func NewCatalogueService(packageStorage store.PackageStorage, logger *logger.Logger) (CatalogueService, error) {
	if packageStorage == nil {
		return nil, ErrNoPackageStorage
	}

	return &catalogueService{
		packageStorage: packageStorage,
		validator:      validators.NewSafariPackageValidator(),
		logger:         logger,
	}, nil
}

func (s *catalogueService) ListPackages(ctx context.Context) ([]models.SafariPackage, error) {
	packages, err := s.packageStorage.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing safari packages: %w", err)
	}

	if err := s.validator.Validate(ctx, packages); err != nil {
		s.logger.Warn().Err(err).Msg("catalogue contains invalid packages")
		return nil, fmt.Errorf("invalid safari package catalogue: %w", err)
	}

	return packages, nil
}
