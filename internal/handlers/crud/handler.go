package crud

import (
	"net/http"

	"hotelops/infras/otel"
	"hotelops/shared/constant"
	"hotelops/shared/crud"
	gDto "hotelops/shared/dto"
	"hotelops/shared/validator"
	"hotelops/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves the shared list/create surface of one resource category.
// Each entity package instantiates it with its own request and response
// types and mounts it under its own path.
type Handler[M, C, R any] struct {
	service crud.Service[M, C, R]
	otel    otel.Otel
	entity  string
	path    string
}

func NewHandler[M, C, R any](service crud.Service[M, C, R], otl otel.Otel, entity, path string) Handler[M, C, R] {
	return Handler[M, C, R]{
		service: service,
		otel:    otl,
		entity:  entity,
		path:    path,
	}
}

func (h *Handler[M, C, R]) Router(router chi.Router) {
	router.Route(h.path, func(routerGroup chi.Router) {
		routerGroup.Get("/", h.List)
		routerGroup.Post("/", h.Create)
	})
}

func (h *Handler[M, C, R]) Create(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := h.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+h.entity+".Create")
	defer scope.End()

	var req C
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := h.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("entity", h.entity).Msg("failed to create entity")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (h *Handler[M, C, R]) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := h.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+h.entity+".List")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(request)

	res, err := h.service.List(ctx, params, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("entity", h.entity).Msg("failed to list entities")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
