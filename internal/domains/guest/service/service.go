package service

import (
	"context"

	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/internal/domains/guest/model"
	"hotelops/internal/domains/guest/model/dto"
	"hotelops/internal/domains/guest/repository"
	"hotelops/shared/cache"
	"hotelops/shared/crud"
	gDto "hotelops/shared/dto"
)

type Guest = crud.Service[model.Guest, dto.CreateGuestRequest, dto.GuestResponse]

func New(repo repository.Guest, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Guest {
	return crud.NewService(crud.Descriptor[model.Guest, dto.CreateGuestRequest, dto.GuestResponse]{
		Entity: model.EntityName,
		ToModel: func(ctx context.Context, req dto.CreateGuestRequest) (model.Guest, error) {
			return req.ToModel(ctx)
		},
		ToResponse: func(m model.Guest) dto.GuestResponse {
			var res dto.GuestResponse
			res.FromModel(m)

			return res
		},
		// Either key colliding blocks the create, matching the two unique
		// constraints on the table.
		UniqueFilter: func(req dto.CreateGuestRequest) gDto.FilterGroup {
			return gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{Table: model.TableName, Field: model.FieldEmail, Value: req.Email, Operator: gDto.FilterOperatorEq},
					gDto.Filter{Table: model.TableName, Field: model.FieldIDNumber, Value: req.IDNumber, Operator: gDto.FilterOperatorEq},
				},
			}
		},
		UniqueMessage: "guest with this email or id number already exists",
	}, repo, cfg, redisCache, otl)
}
