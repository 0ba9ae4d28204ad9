package service

import (
	"context"

	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/internal/domains/room/model"
	"hotelops/internal/domains/room/model/dto"
	"hotelops/internal/domains/room/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/crud"
	gDto "hotelops/shared/dto"
)

type Room = crud.Service[model.Room, dto.CreateRoomRequest, dto.RoomResponse]

func New(repo repository.Room, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Room {
	return crud.NewService(crud.Descriptor[model.Room, dto.CreateRoomRequest, dto.RoomResponse]{
		Entity: model.EntityName,
		ToModel: func(ctx context.Context, req dto.CreateRoomRequest) (model.Room, error) {
			return req.ToModel(ctx)
		},
		ToResponse: func(m model.Room) dto.RoomResponse {
			var res dto.RoomResponse
			res.FromModel(m)

			return res
		},
		UniqueFilter: func(req dto.CreateRoomRequest) gDto.FilterGroup {
			return shared.FilterByField(model.TableName, model.FieldRoomNumber, req.RoomNumber)
		},
		UniqueMessage: "room number already exists",
	}, repo, cfg, redisCache, otl)
}
