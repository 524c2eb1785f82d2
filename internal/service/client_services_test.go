// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/mock"
	"github.com/MKhiriev/go-safari-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewClientServices_WiresJobToSyncService(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockPackageAdapter(ctrl)

	services := NewClientServices(mockAdapter, logger.Nop())
	require.NotNil(t, services.PackageSyncService)
	require.NotNil(t, services.PackageSyncJob)
	defer services.PackageSyncService.Close()

	job, ok := services.PackageSyncJob.(*packageSyncJob)
	require.True(t, ok)
	assert.Same(t, services.PackageSyncService, job.refresher)

	mockAdapter.EXPECT().FetchPackages(gomock.Any()).Return(samplePackages(), nil)
	require.NoError(t, services.PackageSyncService.Load(context.Background()))

	state := services.PackageSyncService.State()
	assert.Equal(t, models.PhaseReady, state.Phase)
	assert.WithinDuration(t, time.Now(), state.LastSyncedAt, time.Minute)
}
