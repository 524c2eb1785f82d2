// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return NewClientConfig(defaultConfig())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{
			name:    "empty base url",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.BaseURL = "  " },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative sync interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.SyncInterval = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ServerConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ServerConfig) {}},
		{
			name:    "empty address",
			mutate:  func(cfg *ServerConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *ServerConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty packages file",
			mutate:  func(cfg *ServerConfig) { cfg.Storage.Files.PackagesFile = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewServerConfig(defaultConfig())
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{Headless: true, LogFile: "client.log"},
		Adapter: Adapter{BaseURL: "http://h", RequestTimeout: time.Second},
		Workers: Workers{SyncInterval: time.Minute},
		Server:  Server{HTTPAddress: "ignored:1"},
	}

	got := NewClientConfig(cfg)
	assert.Equal(t, &ClientConfig{
		App:     ClientApp{Headless: true, LogFile: "client.log"},
		Adapter: ClientAdapter{BaseURL: "http://h", RequestTimeout: time.Second},
		Workers: ClientWorkers{SyncInterval: time.Minute},
	}, got)
}
