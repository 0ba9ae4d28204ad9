package guest

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/guest/model"
	"hotelops/internal/domains/guest/model/dto"
	"hotelops/internal/domains/guest/service"
	"hotelops/internal/handlers/crud"
)

type Handler = crud.Handler[model.Guest, dto.CreateGuestRequest, dto.GuestResponse]

func New(service service.Guest, otl otel.Otel) Handler {
	return crud.NewHandler[model.Guest, dto.CreateGuestRequest, dto.GuestResponse](service, otl, model.EntityName, "/guests")
}
