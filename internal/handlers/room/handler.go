package room

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/room/model"
	"hotelops/internal/domains/room/model/dto"
	"hotelops/internal/domains/room/service"
	"hotelops/internal/handlers/crud"
)

type Handler = crud.Handler[model.Room, dto.CreateRoomRequest, dto.RoomResponse]

func New(service service.Room, otl otel.Otel) Handler {
	return crud.NewHandler[model.Room, dto.CreateRoomRequest, dto.RoomResponse](service, otl, model.EntityName, "/rooms")
}
