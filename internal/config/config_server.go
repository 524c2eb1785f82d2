// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the configuration view of the catalogue server.
type ServerConfig struct {
	// Server holds the listen address and request timeout.
	Server Server
	// Storage holds the fixture and media locations.
	Storage Storage
}

// GetServerConfig builds and validates the catalogue server view of the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the fields of cfg relevant to the catalogue server.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}
}
