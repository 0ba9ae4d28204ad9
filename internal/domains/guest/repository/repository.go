package repository

import (
	"context"

	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/guest/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
