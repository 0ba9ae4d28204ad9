package service

import (
	"context"

	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	"hotelops/internal/domains/booking/repository"
	"hotelops/shared/cache"
	"hotelops/shared/crud"
)

type Booking = crud.Service[model.Booking, dto.CreateBookingRequest, dto.BookingResponse]

// New builds the booking surface. Referential integrity of guest_id, room_id
// and created_by is enforced by the store's foreign keys, surfaced as 400s.
func New(repo repository.Booking, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Booking {
	return crud.NewService(crud.Descriptor[model.Booking, dto.CreateBookingRequest, dto.BookingResponse]{
		Entity: model.EntityName,
		ToModel: func(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, error) {
			return req.ToModel(ctx)
		},
		ToResponse: func(m model.Booking) dto.BookingResponse {
			var res dto.BookingResponse
			res.FromModel(m)

			return res
		},
	}, repo, cfg, redisCache, otl)
}
