package repository

import (
	"context"

	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/room/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
