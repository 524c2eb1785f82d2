// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-safari-sync/internal/config"
	"github.com/MKhiriev/go-safari-sync/internal/logger"
)

// Storages groups the storages of the catalogue server.
type Storages struct {
	PackageStorage PackageStorage
}

// NewStorages initialises the storage layer from cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	packageStorage, err := NewPackageFileStorage(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating package storage: %w", err)
	}

	return &Storages{PackageStorage: packageStorage}, nil
}
