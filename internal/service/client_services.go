// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-safari-sync/internal/adapter"
	"github.com/MKhiriev/go-safari-sync/internal/logger"
)

// ClientServices groups the services of the polling client.
type ClientServices struct {
	PackageSyncService PackageSyncService
	PackageSyncJob     PackageSyncJob
}

// NewClientServices wires the sync service to packageAdapter and the polling
// job to the sync service.
func NewClientServices(packageAdapter adapter.PackageAdapter, logger *logger.Logger) *ClientServices {
	syncSvc := NewPackageSyncService(packageAdapter, logger.GetChildLogger())

	return &ClientServices{
		PackageSyncService: syncSvc,
		PackageSyncJob:     NewPackageSyncJob(syncSvc, logger.GetChildLogger()),
	}
}
