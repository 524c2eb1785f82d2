// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	packagesRoute = "/api/safari-packages"
	versionRoute  = "/api/version/"
	mediaRoute    = "/media/*"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get(packagesRoute, h.listPackages)
		r.Get(packagesRoute+"/", h.listPackages)
	})

	router.Get(versionRoute, h.getServerVersion)

	if h.mediaDir != "" {
		router.Get(mediaRoute, h.serveMedia())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
