package task

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/task/model"
	"hotelops/internal/domains/task/model/dto"
	"hotelops/internal/domains/task/service"
	"hotelops/internal/handlers/crud"
)

type Handler = crud.Handler[model.Task, dto.CreateTaskRequest, dto.TaskResponse]

func New(service service.Task, otl otel.Otel) Handler {
	return crud.NewHandler[model.Task, dto.CreateTaskRequest, dto.TaskResponse](service, otl, model.EntityName, "/tasks")
}
