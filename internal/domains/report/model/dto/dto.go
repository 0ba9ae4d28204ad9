package dto

import (
	"context"

	"hotelops/internal/domains/report/model"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
)

type CreateReportRequest struct {
	Title       string `json:"title"        validate:"required,max=255"`
	ReportType  string `json:"report_type"  validate:"required,max=50"`
	PeriodStart string `json:"period_start" validate:"required"`
	PeriodEnd   string `json:"period_end"   validate:"required"`
	Data        string `json:"data"         validate:"required"`
}

func (c *CreateReportRequest) ToModel(_ context.Context) (model.Report, error) {
	periodStart, err := timezone.Parse(constant.DateFormat, c.PeriodStart)
	if err != nil {
		return model.Report{}, failure.BadRequestFromString("period_start must be a valid RFC3339 timestamp")
	}

	periodEnd, err := timezone.Parse(constant.DateFormat, c.PeriodEnd)
	if err != nil {
		return model.Report{}, failure.BadRequestFromString("period_end must be a valid RFC3339 timestamp")
	}

	now := timezone.Now()

	return model.Report{
		Title:       c.Title,
		ReportType:  c.ReportType,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Data:        c.Data,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

type ReportResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReportType  string `json:"report_type"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Data        string `json:"data"`
	CreatedAt   string `json:"created_at"`
}

func (r *ReportResponse) FromModel(model model.Report) {
	r.ID = model.ID
	r.Title = model.Title
	r.ReportType = model.ReportType
	r.PeriodStart = timezone.Format(model.PeriodStart, constant.DateFormat)
	r.PeriodEnd = timezone.Format(model.PeriodEnd, constant.DateFormat)
	r.Data = model.Data
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}
