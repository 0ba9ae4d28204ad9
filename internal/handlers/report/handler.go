package report

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/report/model"
	"hotelops/internal/domains/report/model/dto"
	"hotelops/internal/domains/report/service"
	"hotelops/internal/handlers/crud"
)

type Handler = crud.Handler[model.Report, dto.CreateReportRequest, dto.ReportResponse]

func New(service service.Report, otl otel.Otel) Handler {
	return crud.NewHandler[model.Report, dto.CreateReportRequest, dto.ReportResponse](service, otl, model.EntityName, "/reports")
}
