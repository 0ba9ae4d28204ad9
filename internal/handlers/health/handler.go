package health

import (
	"net/http"

	"hotelops/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const version = "1.0.0"

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

func (handler *Handler) Health(writer http.ResponseWriter, _ *http.Request) {
	response.WithJSON(writer, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": version,
	})
}
