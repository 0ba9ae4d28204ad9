package repository

import (
	"context"

	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/booking/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
