// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierLayerWins verifies that a non-zero field of an earlier
// layer is not overwritten by a later one, while zero fields are filled.
func TestBuild_EarlierLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "http://env.example.com"}},
		&StructuredConfig{Adapter: Adapter{BaseURL: "http://json.example.com", RequestTimeout: 3 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_BASE_URL":      "http://env.example.com",
		"WORKERS_SYNC_INTERVAL": "10s",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://env.example.com", b.configs[0].Adapter.BaseURL)
	assert.Equal(t, 10*time.Second, b.configs[0].Workers.SyncInterval)
}

func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "never"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-b", "http://flag.example.com"}))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://flag.example.com", b.configs[0].Adapter.BaseURL)
}

func TestWithFlags_SetsErrorOnInvalidFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeJSONFile(t, `{"adapter": {"base_url": "http://json.example.com"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "http://json.example.com", b.configs[1].Adapter.BaseURL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesFirstPath verifies that the env-provided path is preferred
// over the flag-provided one.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	envPath := writeJSONFile(t, `{"adapter": {"base_url": "http://from-env-path"}}`)
	flagPath := writeJSONFile(t, `{"adapter": {"base_url": "http://from-flag-path"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: envPath},
		&StructuredConfig{JSONFilePath: flagPath},
	)
	b.withJSON()

	require.Len(t, b.configs, 3)
	assert.Equal(t, "http://from-env-path", b.configs[2].Adapter.BaseURL)
}

func TestWithJSON_DoesNotAppend_WhenErrorAlreadySet(t *testing.T) {
	path := writeJSONFile(t, `{}`)

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.Len(t, b.configs, 1)
}

// ── withDefaults / full chain ─────────────────────────────────────────────────

func TestLoadStructuredConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := loadStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultServerRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultPackagesFile, cfg.Storage.Files.PackagesFile)
	assert.Empty(t, cfg.Storage.Files.MediaDir)
	assert.False(t, cfg.App.Headless)
}

func TestLoadStructuredConfig_Priority(t *testing.T) {
	jsonPath := writeJSONFile(t, `{
		"adapter": {"base_url": "http://json.example.com", "request_timeout": "7s"},
		"workers": {"sync_interval": "2m"},
		"storage": {"files": {"media_dir": "/json/media"}}
	}`)
	setEnvVars(t, map[string]string{
		"ADAPTER_BASE_URL": "http://env.example.com",
		"CONFIG":           jsonPath,
	})

	cfg, err := loadStructuredConfig([]string{"-b", "http://flag.example.com", "-sync-interval", "1m"})
	require.NoError(t, err)

	// env beats flags and json
	assert.Equal(t, "http://env.example.com", cfg.Adapter.BaseURL)
	// flags beat json
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	// json beats defaults
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/json/media", cfg.Storage.Files.MediaDir)
	// defaults fill the rest
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
}

func TestLoadStructuredConfig_BrokenJSONFails(t *testing.T) {
	clearEnvVars(t)
	path := writeJSONFile(t, `not json`)

	cfg, err := loadStructuredConfig([]string{"-c", path})
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error occured during building config")
}
