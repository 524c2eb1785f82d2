// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.BaseURL) == "" {
		return fmt.Errorf("%w: empty base url", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SyncInterval <= 0 {
		return fmt.Errorf("%w: sync interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if strings.TrimSpace(cfg.Storage.Files.PackagesFile) == "" {
		return fmt.Errorf("%w: empty packages file", ErrInvalidStorageConfigs)
	}

	return nil
}
