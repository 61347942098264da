package repository

import (
	"context"
	"database/sql"
	"errors"

	"health-wallet/config"
	"health-wallet/internal/model"
	"health-wallet/internal/util"

	"github.com/jmoiron/sqlx"
)

type ShareRepository struct {
	*config.Database
}

func NewShareRepository(database *config.Database) *ShareRepository {
	return &ShareRepository{database}
}

// CanView : true, если пользователь владелец отчёта или имеет активный грант
func (r *ShareRepository) CanView(ctx context.Context, exec sqlx.ExtContext, reportUUID string, userUUID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM reports AS r
			LEFT JOIN shared_access AS sa
			  ON r.uuid = sa.report_uuid
			 AND sa.shared_with_uuid = $2
			WHERE r.uuid = $1
			  AND (r.owner_uuid = $2 OR sa.shared_with_uuid IS NOT NULL)
		)
	`
	var exists bool
	err := sqlx.GetContext(ctx, exec, &exists, query, reportUUID, userUUID)
	if err != nil {
		return false, util.LogError("[ShareRepo] ошибка проверки доступа", err)
	}
	return exists, nil
}

// IsOwner : true, если отчёт существует и принадлежит пользователю.
// Покрывает удаление отчёта, выдачу и отзыв грантов
func (r *ShareRepository) IsOwner(ctx context.Context, exec sqlx.ExtContext, reportUUID string, ownerUUID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM reports WHERE uuid = $1 AND owner_uuid = $2)`
	err := sqlx.GetContext(ctx, exec, &exists, query, reportUUID, ownerUUID)
	if err != nil {
		return false, util.LogError("[ShareRepo] ошибка проверки владельца", err)
	}
	return exists, nil
}

// FindGrant : возвращает активный грант пары (отчёт, получатель); nil если гранта нет
func (r *ShareRepository) FindGrant(ctx context.Context, exec sqlx.ExtContext, reportUUID string, sharedWithUUID string) (*model.SharedAccess, error) {
	query := `
		SELECT uuid, report_uuid, owner_uuid, shared_with_uuid, access_type, created_at
		FROM shared_access
		WHERE report_uuid = $1 AND shared_with_uuid = $2
	`

	var grant model.SharedAccess
	err := sqlx.GetContext(ctx, exec, &grant, query, reportUUID, sharedWithUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[ShareRepo] ошибка поиска гранта", err)
	}

	return &grant, nil
}

// Upsert : создаёт грант или обновляет access_type существующего.
// Уникальность (report_uuid, shared_with_uuid) никогда не нарушается
func (r *ShareRepository) Upsert(ctx context.Context, exec sqlx.ExtContext, grant *model.SharedAccess) error {
	query := `
		INSERT INTO shared_access (uuid, report_uuid, owner_uuid, shared_with_uuid, access_type, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (report_uuid, shared_with_uuid) DO UPDATE
		SET access_type = EXCLUDED.access_type
	`
	_, err := exec.ExecContext(ctx, query,
		grant.UUID, grant.ReportUUID, grant.OwnerUUID, grant.SharedWithUUID, grant.AccessType)
	if err != nil {
		return util.LogError("[ShareRepo] не удалось сохранить грант", err)
	}
	return nil
}

// ListByReport : гранты отчёта с именем и email получателя
func (r *ShareRepository) ListByReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string) ([]model.Grant, error) {
	query := `
		SELECT sa.uuid, sa.report_uuid, sa.owner_uuid, sa.shared_with_uuid,
		       sa.access_type, sa.created_at, u.name, u.email
		FROM shared_access AS sa
		INNER JOIN users AS u ON sa.shared_with_uuid = u.uuid
		WHERE sa.report_uuid = $1
		ORDER BY sa.created_at DESC
	`

	grants := []model.Grant{}
	if err := sqlx.SelectContext(ctx, exec, &grants, query, reportUUID); err != nil {
		return nil, util.LogError("[ShareRepo] не удалось получить список грантов", err)
	}

	return grants, nil
}

// ListSharedByOwner : гранты, выданные владельцем, с данными получателя и отчёта
func (r *ShareRepository) ListSharedByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.ShareListing, error) {
	query := `
		SELECT sa.uuid, sa.report_uuid, sa.owner_uuid, sa.shared_with_uuid,
		       sa.access_type, sa.created_at,
		       u.name AS shared_with_name, u.email AS shared_with_email,
		       r.file_name, r.report_type, r.date AS report_date
		FROM shared_access AS sa
		INNER JOIN users AS u ON sa.shared_with_uuid = u.uuid
		INNER JOIN reports AS r ON sa.report_uuid = r.uuid
		WHERE sa.owner_uuid = $1
		ORDER BY sa.created_at DESC
	`

	listings := []model.ShareListing{}
	if err := sqlx.SelectContext(ctx, exec, &listings, query, ownerUUID); err != nil {
		return nil, util.LogError("[ShareRepo] не удалось получить выданные гранты", err)
	}

	return listings, nil
}

// ListSharedWithUser : отчёты, доступные пользователю по грантам,
// по времени выдачи гранта по убыванию
func (r *ShareRepository) ListSharedWithUser(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.SharedReport, error) {
	query := `
		SELECT r.uuid, r.owner_uuid, r.file_name, r.storage_path, r.mime_type,
		       r.report_type, r.date, r.created_at, u.name AS owner_name
		FROM reports AS r
		INNER JOIN shared_access AS sa ON r.uuid = sa.report_uuid
		INNER JOIN users AS u ON sa.owner_uuid = u.uuid
		WHERE sa.shared_with_uuid = $1
		ORDER BY sa.created_at DESC
	`

	reports := []model.SharedReport{}
	if err := sqlx.SelectContext(ctx, exec, &reports, query, userUUID); err != nil {
		return nil, util.LogError("[ShareRepo] не удалось получить доступные отчёты", err)
	}

	return reports, nil
}

// Revoke : удаляет грант, возвращает число затронутых строк.
// Ноль строк — признак отзыва несуществующего гранта, сервис отдаёт NotFound
func (r *ShareRepository) Revoke(ctx context.Context, exec sqlx.ExtContext, reportUUID string, sharedWithUUID string) (int64, error) {
	result, err := exec.ExecContext(ctx,
		`DELETE FROM shared_access WHERE report_uuid = $1 AND shared_with_uuid = $2`,
		reportUUID, sharedWithUUID)
	if err != nil {
		return 0, util.LogError("[ShareRepo] не удалось отозвать грант", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("[ShareRepo] не удалось получить число удалённых строк", err)
	}
	return affected, nil
}
