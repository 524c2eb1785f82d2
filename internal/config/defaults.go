// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultBaseURL              = "http://127.0.0.1:8000"
	DefaultAdapterTimeout       = 10 * time.Second
	DefaultSyncInterval         = 30 * time.Second
	DefaultServerAddress        = "127.0.0.1:8000"
	DefaultServerRequestTimeout = 15 * time.Second
	DefaultPackagesFile         = "safari_packages.json"
)

// defaultConfig returns the lowest-priority layer of the configuration.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Storage: Storage{
			Files: Files{
				PackagesFile: DefaultPackagesFile,
			},
		},
	}
}
