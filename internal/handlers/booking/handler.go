package booking

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	"hotelops/internal/domains/booking/service"
	"hotelops/internal/handlers/crud"
)

type Handler = crud.Handler[model.Booking, dto.CreateBookingRequest, dto.BookingResponse]

func New(service service.Booking, otl otel.Otel) Handler {
	return crud.NewHandler[model.Booking, dto.CreateBookingRequest, dto.BookingResponse](service, otl, model.EntityName, "/bookings")
}
