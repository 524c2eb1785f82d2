// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-safari-sync/internal/config"
	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/service"
)

type Handler struct {
	services *service.Services

	// mediaDir is served under /media/. Empty disables the route.
	mediaDir       string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		mediaDir:       cfg.Storage.Files.MediaDir,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
