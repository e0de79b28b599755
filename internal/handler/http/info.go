package http

import (
	"net/http"
	"sort"

	"github.com/MKhiriev/go-face-register/internal/app"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": app.StatusSuccess}, http.StatusOK)
}

// index reports the build metadata, the number of accepted registrations and
// every registered route as "METHOD pattern".
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.RegistrationReceiver.Count(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.index").Msg("failed to count registrations")
		writeError(w, err)
		return
	}

	info := h.services.AppInfoService.GetAppInfo(r.Context())
	info.Registrations = count
	info.Routes = listRoutes(r)

	utils.WriteJSON(w, info, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func listRoutes(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return []string{}
	}

	routes := []string{}
	for _, route := range rctx.Routes.Routes() {
		for method := range route.Handlers {
			routes = append(routes, method+" "+route.Pattern)
		}
	}
	sort.Strings(routes)

	return routes
}
