package ports

import (
	"context"

	"health-wallet/internal/model"
	"health-wallet/internal/model/requestresponse"

	"github.com/jmoiron/sqlx"
)

// ShareRepository : SQL слой грантов доступа и проверок прав.
// CanView и IsOwner всегда ходят в БД, их результаты не кэшируются
type ShareRepository interface {
	CanView(ctx context.Context, exec sqlx.ExtContext, reportUUID string, userUUID string) (bool, error)
	IsOwner(ctx context.Context, exec sqlx.ExtContext, reportUUID string, ownerUUID string) (bool, error)
	FindGrant(ctx context.Context, exec sqlx.ExtContext, reportUUID string, sharedWithUUID string) (*model.SharedAccess, error)
	Upsert(ctx context.Context, exec sqlx.ExtContext, grant *model.SharedAccess) error
	ListByReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string) ([]model.Grant, error)
	ListSharedByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.ShareListing, error)
	ListSharedWithUser(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.SharedReport, error)
	Revoke(ctx context.Context, exec sqlx.ExtContext, reportUUID string, sharedWithUUID string) (int64, error)
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

type ShareService interface {
	GrantAccess(ctx context.Context, ownerUUID string, reportUUID string, granteeEmail string, accessType string) (*requestresponse.SharedWithData, bool, error)
	ListGrants(ctx context.Context, ownerUUID string, reportUUID string) ([]requestresponse.GrantEntry, error)
	ListSharedWithMe(ctx context.Context, userUUID string) ([]requestresponse.ReportEntry, error)
	ListSharedByMe(ctx context.Context, userUUID string) ([]requestresponse.SharedByMeEntry, error)
	RevokeAccess(ctx context.Context, ownerUUID string, reportUUID string, sharedWithUUID string) error
}
