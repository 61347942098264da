package ports

import (
	"context"

	"health-wallet/internal/model"
	"health-wallet/internal/model/requestresponse"

	"github.com/jmoiron/sqlx"
)

// ReportRepository : SQL слой отчётов
type ReportRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, report *model.Report) error
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, reportUUID string) (*model.Report, error)
	ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, date string, reportType string) ([]model.Report, error)
	ListSharedWith(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.SharedReport, error)
	Delete(ctx context.Context, exec sqlx.ExtContext, reportUUID string) error
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

type ReportService interface {
	CreateReport(ctx context.Context, report *model.Report, fileBytes []byte, vitals []requestresponse.VitalPayload) (*model.Report, error)
	ListReports(ctx context.Context, userUUID string, date string, reportType string) (*requestresponse.ListReportsResponse, error)
	GetReport(ctx context.Context, reportUUID string, userUUID string) (*requestresponse.ReportDetail, error)
	DeleteReport(ctx context.Context, reportUUID string, userUUID string) error
}
