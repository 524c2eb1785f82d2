// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/store"
	"github.com/MKhiriev/go-safari-sync/internal/validators"
	"github.com/MKhiriev/go-safari-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPackageStorage возвращает заранее заданные пакеты или ошибку.
type stubPackageStorage struct {
	packages []models.SafariPackage
	err      error
}

func (s *stubPackageStorage) ListPackages(context.Context) ([]models.SafariPackage, error) {
	return s.packages, s.err
}

func TestNewCatalogueService_RequiresStorage(t *testing.T) {
	svc, err := NewCatalogueService(nil, logger.Nop())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrNoPackageStorage)
}

func TestCatalogueService_ListPackages(t *testing.T) {
	storageErr := errors.New("disk on fire")

	tests := []struct {
		name    string
		storage *stubPackageStorage
		want    []models.SafariPackage
		wantErr error
	}{
		{
			name:    "valid catalogue",
			storage: &stubPackageStorage{packages: samplePackages()},
			want:    samplePackages(),
		},
		{
			name:    "empty catalogue",
			storage: &stubPackageStorage{packages: []models.SafariPackage{}},
			want:    []models.SafariPackage{},
		},
		{
			name:    "storage error",
			storage: &stubPackageStorage{err: storageErr},
			wantErr: storageErr,
		},
		{
			name: "invalid group size",
			storage: &stubPackageStorage{packages: []models.SafariPackage{
				{ID: 1, Name: "Serengeti", GroupSizeMin: 8, GroupSizeMax: 2},
			}},
			wantErr: validators.ErrGroupSizeRange,
		},
		{
			name: "empty name",
			storage: &stubPackageStorage{packages: []models.SafariPackage{
				{ID: 1, GroupSizeMin: 1, GroupSizeMax: 2},
			}},
			wantErr: validators.ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewCatalogueService(tt.storage, logger.Nop())
			require.NoError(t, err)

			got, err := svc.ListPackages(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewServices(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("1.0.0", "", "")

	services, err := NewServices(&store.Storages{PackageStorage: &stubPackageStorage{}}, buildInfo, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.CatalogueService)
	assert.NotNil(t, services.AppInfoService)

	_, err = NewServices(&store.Storages{}, buildInfo, logger.Nop())
	assert.ErrorIs(t, err, ErrNoPackageStorage)
}
