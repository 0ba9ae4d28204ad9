package model

import (
	"time"

	"hotelops/shared/model"
)

const (
	TableName  = "reports"
	EntityName = "report"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldReportType  = "report_type"
	FieldPeriodStart = "period_start"
	FieldPeriodEnd   = "period_end"
	FieldData        = "data"
)

// Report rows carry an opaque data payload; the server never interprets it.
type Report struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	ReportType  string    `db:"report_type"`
	PeriodStart time.Time `db:"period_start"`
	PeriodEnd   time.Time `db:"period_end"`
	Data        string    `db:"data"`
	model.Metadata
}
