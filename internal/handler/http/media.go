// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
)

// serveMedia serves package pictures from mediaDir. Directory listings are
// not exposed.
func (h *Handler) serveMedia() http.HandlerFunc {
	files := http.StripPrefix("/media/", http.FileServer(http.Dir(h.mediaDir)))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}
