// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-safari-sync/internal/config"
	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/models"
)

// packageFileStorage serves the catalogue from a JSON fixture. The file is
// read on every call, so edits show up on the next request without a restart.
type packageFileStorage struct {
	path   string
	logger *logger.Logger
}

// NewPackageFileStorage constructs a [PackageStorage] backed by
// cfg.PackagesFile. The file itself is not touched until the first read.
func NewPackageFileStorage(cfg config.Files, logger *logger.Logger) (PackageStorage, error) {
	path := strings.TrimSpace(cfg.PackagesFile)
	if path == "" {
		return nil, ErrNoPackagesFile
	}

	return &packageFileStorage{
		path:   path,
		logger: logger,
	}, nil
}

// ListPackages reads and decodes the fixture. A fixture holding `[]` or
// `null` yields an empty, non-nil slice.
func (s *packageFileStorage) ListPackages(ctx context.Context) ([]models.SafariPackage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Err(err).Str("path", s.path).Msg("reading packages file failed")
		return nil, fmt.Errorf("%w: %w", ErrReadingPackagesFile, err)
	}

	packages := make([]models.SafariPackage, 0)
	if err := json.Unmarshal(data, &packages); err != nil {
		s.logger.Err(err).Str("path", s.path).Msg("decoding packages file failed")
		return nil, fmt.Errorf("%w: %w", ErrDecodingPackagesFile, err)
	}
	if packages == nil {
		packages = []models.SafariPackage{}
	}

	s.logger.Debug().Str("path", s.path).Int("packages", len(packages)).Msg("packages file loaded")
	return packages, nil
}
