package repository

import (
	"context"

	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/report/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
)

type Report interface {
	Insert(ctx context.Context, model model.Report) (model.Report, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Report, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Report]
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Report](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
