package user

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/user/model"
	"hotelops/internal/domains/user/model/dto"
	"hotelops/internal/domains/user/service"
	"hotelops/internal/handlers/crud"
)

type Handler = crud.Handler[model.User, dto.CreateUserRequest, dto.UserResponse]

func New(service service.User, otl otel.Otel) Handler {
	return crud.NewHandler[model.User, dto.CreateUserRequest, dto.UserResponse](service, otl, model.EntityName, "/users")
}
