// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// The handler looks up the route whose pattern exactly matches the request
// path and answers HTTP 405 with an Allow header listing the methods that
// route does handle. A path with no exact pattern match answers 404.
//
// If the requested method IS registered for the matched route, the request
// is forwarded to the router's normal ServeHTTP pipeline so that the
// appropriate handler executes as usual.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		var foundRoute *chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = &route
				break
			}
		}

		if foundRoute == nil {
			http.NotFound(w, r)
			return
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; ok {
			router.ServeHTTP(w, r)
			return
		}

		allowed := make([]string, 0, len(foundRoute.Handlers))
		for method := range foundRoute.Handlers {
			allowed = append(allowed, method)
		}
		slices.Sort(allowed)

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
