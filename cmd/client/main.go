// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-safari-sync/internal/adapter"
	"github.com/MKhiriev/go-safari-sync/internal/client"
	"github.com/MKhiriev/go-safari-sync/internal/config"
	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/service"
	"github.com/MKhiriev/go-safari-sync/internal/tui"
	"github.com/MKhiriev/go-safari-sync/models"
)

const role = "safari-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to the TUI unless running headless
	log := logger.NewLogger(role)
	if !cfg.App.Headless {
		log = logger.NewClientLogger(role, cfg.App.LogFile)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	packageAdapter, err := adapter.NewHTTPPackageAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create package adapter")
	}

	services := service.NewClientServices(packageAdapter, log)

	var ui client.UI
	if cfg.App.Headless {
		ui = client.NewHeadlessUI(services.PackageSyncService, log)
	} else {
		baseURL, _ := adapter.NormalizeBaseURL(cfg.Adapter.BaseURL)
		ui, err = tui.New(services, tui.Options{
			BaseURL:      baseURL,
			SyncInterval: cfg.Workers.SyncInterval,
			BuildInfo:    models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
