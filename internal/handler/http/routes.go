package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/", h.index)
	router.Get("/users", h.users)
	router.Get("/version", h.getServerVersion)

	router.Post("/sort", h.sort)
	router.Post("/users/{id}/popup", h.openPopup)
	router.Post("/popup/close", h.closePopup)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
