package service

import (
	"context"

	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/internal/domains/user/model"
	"hotelops/internal/domains/user/model/dto"
	"hotelops/internal/domains/user/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/crud"
	gDto "hotelops/shared/dto"
)

// User is the staff-account surface: list accounts and register new ones.
type User = crud.Service[model.User, dto.CreateUserRequest, dto.UserResponse]

func New(repo repository.User, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) User {
	return crud.NewService(crud.Descriptor[model.User, dto.CreateUserRequest, dto.UserResponse]{
		Entity: model.EntityName,
		ToModel: func(ctx context.Context, req dto.CreateUserRequest) (model.User, error) {
			return req.ToModel(ctx)
		},
		ToResponse: func(m model.User) dto.UserResponse {
			var res dto.UserResponse
			res.FromModel(m)

			return res
		},
		UniqueFilter: func(req dto.CreateUserRequest) gDto.FilterGroup {
			return shared.FilterByField(model.TableName, model.FieldEmail, req.Email)
		},
		UniqueMessage: "email already registered",
	}, repo, cfg, redisCache, otl)
}
