// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/utils"
)

func (h *Handler) listPackages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	packages, err := h.services.CatalogueService.ListPackages(r.Context())
	if err != nil {
		log.Err(err).Msg("listing safari packages failed")
		utils.WriteText(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, packages, http.StatusOK); err != nil {
		log.Err(err).Msg("writing safari packages response failed")
	}
}
