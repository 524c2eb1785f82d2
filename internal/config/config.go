// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the catalogue server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client runtime settings (UI mode, log destination).
	App App `envPrefix:"APP_"`

	// Storage holds the catalogue fixture locations used by the server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the catalogue
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound transport used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client runtime settings.
type App struct {
	// Headless disables the terminal UI; state changes are logged to stdout
	// instead.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`

	// LogFile is where the interactive client writes its logs. Empty means a
	// file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the file locations of the catalogue server.
type Storage struct {
	// Files holds the fixture and media locations.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings of the catalogue server.
type Files struct {
	// PackagesFile is the JSON fixture with the safari packages. It is read
	// on every request.
	// Env: STORAGE_FILES_PACKAGES_FILE
	PackagesFile string `env:"PACKAGES_FILE"`

	// MediaDir is served under /media/. Empty disables media serving.
	// Env: STORAGE_FILES_MEDIA_DIR
	MediaDir string `env:"MEDIA_DIR"`
}

// Server holds network and timeout settings for the catalogue server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "15s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the client transport.
type Adapter struct {
	// BaseURL is the API origin, e.g. "http://127.0.0.1:8000". Picture paths
	// are resolved against it as well.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound fetch.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval is the polling period of the package sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources using the process arguments. Priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
