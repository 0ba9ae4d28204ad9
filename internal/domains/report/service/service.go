package service

import (
	"context"

	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/internal/domains/report/model"
	"hotelops/internal/domains/report/model/dto"
	"hotelops/internal/domains/report/repository"
	"hotelops/shared/cache"
	"hotelops/shared/crud"
)

type Report = crud.Service[model.Report, dto.CreateReportRequest, dto.ReportResponse]

func New(repo repository.Report, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Report {
	return crud.NewService(crud.Descriptor[model.Report, dto.CreateReportRequest, dto.ReportResponse]{
		Entity: model.EntityName,
		ToModel: func(ctx context.Context, req dto.CreateReportRequest) (model.Report, error) {
			return req.ToModel(ctx)
		},
		ToResponse: func(m model.Report) dto.ReportResponse {
			var res dto.ReportResponse
			res.FromModel(m)

			return res
		},
	}, repo, cfg, redisCache, otl)
}
