package repository

import (
	"context"

	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/task/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
)

type Task interface {
	Insert(ctx context.Context, model model.Task) (model.Task, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Task, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Task]
}

func New(db *postgres.Connection, otel otel.Otel) Task {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
