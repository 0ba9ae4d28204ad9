package service

import (
	"context"

	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/internal/domains/task/model"
	"hotelops/internal/domains/task/model/dto"
	"hotelops/internal/domains/task/repository"
	"hotelops/shared/cache"
	"hotelops/shared/crud"
)

type Task = crud.Service[model.Task, dto.CreateTaskRequest, dto.TaskResponse]

func New(repo repository.Task, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Task {
	return crud.NewService(crud.Descriptor[model.Task, dto.CreateTaskRequest, dto.TaskResponse]{
		Entity: model.EntityName,
		ToModel: func(ctx context.Context, req dto.CreateTaskRequest) (model.Task, error) {
			return req.ToModel(ctx)
		},
		ToResponse: func(m model.Task) dto.TaskResponse {
			var res dto.TaskResponse
			res.FromModel(m)

			return res
		},
	}, repo, cfg, redisCache, otl)
}
