package ports

import (
	"context"

	"health-wallet/internal/model"
	"health-wallet/internal/model/requestresponse"

	"github.com/jmoiron/sqlx"
)

// VitalRepository : SQL слой показателей здоровья
type VitalRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, vital *model.Vital) error
	GetOwned(ctx context.Context, exec sqlx.ExtContext, vitalUUID string, ownerUUID string) (*model.Vital, error)
	List(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, filter model.VitalFilter) ([]model.Vital, error)
	ListForTrends(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, startDate string, endDate string) ([]model.Vital, error)
	Update(ctx context.Context, exec sqlx.ExtContext, vital *model.Vital) error
	Delete(ctx context.Context, exec sqlx.ExtContext, vitalUUID string, ownerUUID string) (int64, error)
	LinkToReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string, vitalUUID string) error
	ListByReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string) ([]model.Vital, error)
	ListSummariesByReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string) ([]model.VitalSummary, error)
	ListReportUUIDs(ctx context.Context, exec sqlx.ExtContext, vitalUUID string) ([]string, error)
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

type VitalService interface {
	AddVital(ctx context.Context, vital *model.Vital) (*model.Vital, error)
	ListVitals(ctx context.Context, ownerUUID string, filter model.VitalFilter) ([]requestresponse.VitalResponse, error)
	GetTrends(ctx context.Context, ownerUUID string, startDate string, endDate string) (map[string][]requestresponse.TrendPoint, error)
	UpdateVital(ctx context.Context, vitalUUID string, ownerUUID string, req *requestresponse.UpdateVitalRequest) error
	DeleteVital(ctx context.Context, vitalUUID string, ownerUUID string) error
}
