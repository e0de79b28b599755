package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	routeIndex    = "/"
	routeHealth   = "/health"
	routeVersion  = "/version"
	routeRegister = "/register"

	routeRegistration = routeRegister + "/{" + paramUserID + "}"
	paramUserID       = "user_id"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get(routeIndex, h.index)
	router.Get(routeHealth, h.health)
	router.Get(routeVersion, h.getServerVersion)
	router.Post(routeRegister, h.register)
	router.Get(routeRegistration, h.getRegistration)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
