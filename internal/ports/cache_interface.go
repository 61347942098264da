package ports

import (
	"context"

	"health-wallet/internal/model"
)

// CacheRepository : кэш собранных ответов по отчёту.
// Кэшируется только payload, проверка прав всегда выполняется по БД
type CacheRepository interface {
	SetReport(ctx context.Context, report *model.ReportPayload) error
	GetReport(ctx context.Context, reportUUID string) (*model.ReportPayload, error)
	DeleteReport(ctx context.Context, reportUUID string) error
	DeleteReports(ctx context.Context, reportUUIDs []string) error
}
