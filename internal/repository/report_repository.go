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

type ReportRepository struct {
	*config.Database
}

func NewReportRepository(database *config.Database) *ReportRepository {
	return &ReportRepository{database}
}

// Create : сохраняет новый отчёт
func (r *ReportRepository) Create(ctx context.Context, exec sqlx.ExtContext, report *model.Report) error {
	query := `
		INSERT INTO reports (uuid, owner_uuid, file_name, storage_path, mime_type, report_type, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		report.UUID,
		report.OwnerUUID,
		report.FileName,
		report.StoragePath,
		report.MimeType,
		report.ReportType,
		report.Date)

	if err != nil {
		return util.LogError("[ReportRepo] ошибка вставки отчёта в БД", err)
	}
	return nil
}

// GetByUUID : возвращает отчёт без проверки прав; права решает ShareRepository
func (r *ReportRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, reportUUID string) (*model.Report, error) {
	query := `
		SELECT uuid, owner_uuid, file_name, storage_path, mime_type, report_type, date, created_at
		FROM reports
		WHERE uuid = $1
	`

	var report model.Report
	err := sqlx.GetContext(ctx, exec, &report, query, reportUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[ReportRepo] не удалось найти отчёт", err)
	}

	return &report, nil
}

// ListByOwner : отчёты владельца, опционально суженные точным совпадением
// даты и/или типа отчёта, по дате по убыванию
func (r *ReportRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, date string, reportType string) ([]model.Report, error) {
	query := `
		SELECT uuid, owner_uuid, file_name, storage_path, mime_type, report_type, date, created_at
		FROM reports
		WHERE owner_uuid = $1
	`
	args := []interface{}{ownerUUID}

	if date != "" {
		args = append(args, date)
		query += ` AND date = $2`
	}
	if reportType != "" {
		args = append(args, reportType)
		if date != "" {
			query += ` AND report_type = $3`
		} else {
			query += ` AND report_type = $2`
		}
	}

	query += ` ORDER BY date DESC`

	reports := []model.Report{}
	if err := sqlx.SelectContext(ctx, exec, &reports, query, args...); err != nil {
		return nil, util.LogError("[ReportRepo] не удалось получить список отчётов", err)
	}

	return reports, nil
}

// ListSharedWith : отчёты, к которым пользователю выдан грант, с именем владельца,
// по дате отчёта по убыванию
func (r *ReportRepository) ListSharedWith(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.SharedReport, error) {
	query := `
		SELECT r.uuid, r.owner_uuid, r.file_name, r.storage_path, r.mime_type,
		       r.report_type, r.date, r.created_at, u.name AS owner_name
		FROM reports AS r
		INNER JOIN shared_access AS sa ON r.uuid = sa.report_uuid
		INNER JOIN users AS u ON r.owner_uuid = u.uuid
		WHERE sa.shared_with_uuid = $1
		ORDER BY r.date DESC
	`

	reports := []model.SharedReport{}
	if err := sqlx.SelectContext(ctx, exec, &reports, query, userUUID); err != nil {
		return nil, util.LogError("[ReportRepo] не удалось получить доступные отчёты", err)
	}

	return reports, nil
}

// Delete : удаляет отчёт; каскад в схеме убирает связи и гранты, но не показатели
func (r *ReportRepository) Delete(ctx context.Context, exec sqlx.ExtContext, reportUUID string) error {
	_, err := exec.ExecContext(ctx, `DELETE FROM reports WHERE uuid = $1`, reportUUID)
	if err != nil {
		return util.LogError("[ReportRepo] не удалось удалить отчёт", err)
	}
	return nil
}
