// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/go-face-register/internal/app"
	"github.com/MKhiriev/go-face-register/internal/utils"
	"github.com/MKhiriev/go-face-register/models"
	"github.com/go-chi/chi/v5"
)

var routableMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// methodNotAllowed returns the router's MethodNotAllowed handler. It answers
// 405 with a JSON error document and an "Allow" header listing the methods
// the router would accept for the requested path, URL parameters included.
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range routableMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}
		sort.Strings(allowed)

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		utils.WriteJSON(w, models.ErrorResponse{
			Status:  app.StatusError,
			Message: app.MsgMethodNotAllowed,
		}, http.StatusMethodNotAllowed)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{
		Status:  app.StatusError,
		Message: app.MsgNotFound,
	}, http.StatusNotFound)
}
