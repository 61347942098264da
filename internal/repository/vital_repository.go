package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"health-wallet/config"
	"health-wallet/internal/model"
	"health-wallet/internal/util"

	"github.com/jmoiron/sqlx"
)

type VitalRepository struct {
	*config.Database
}

func NewVitalRepository(database *config.Database) *VitalRepository {
	return &VitalRepository{database}
}

// Create : сохраняет новое измерение
func (r *VitalRepository) Create(ctx context.Context, exec sqlx.ExtContext, vital *model.Vital) error {
	query := `
		INSERT INTO vitals (uuid, owner_uuid, vital_type, value, unit, date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := exec.ExecContext(ctx, query,
		vital.UUID, vital.OwnerUUID, vital.VitalType, vital.Value, vital.Unit, vital.Date)
	if err != nil {
		return util.LogError("[VitalRepo] ошибка вставки показателя в БД", err)
	}
	return nil
}

// GetOwned : возвращает показатель только его владельцу
func (r *VitalRepository) GetOwned(ctx context.Context, exec sqlx.ExtContext, vitalUUID string, ownerUUID string) (*model.Vital, error) {
	query := `
		SELECT uuid, owner_uuid, vital_type, value, unit, date, created_at
		FROM vitals
		WHERE uuid = $1 AND owner_uuid = $2
	`

	var vital model.Vital
	err := sqlx.GetContext(ctx, exec, &vital, query, vitalUUID, ownerUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[VitalRepo] не удалось найти показатель", err)
	}

	return &vital, nil
}

// List : показатели владельца с фильтрами по типу и включительному диапазону дат,
// по дате по убыванию
func (r *VitalRepository) List(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, filter model.VitalFilter) ([]model.Vital, error) {
	query := `
		SELECT uuid, owner_uuid, vital_type, value, unit, date, created_at
		FROM vitals
		WHERE owner_uuid = $1
	`
	args := []interface{}{ownerUUID}

	if filter.VitalType != "" {
		args = append(args, filter.VitalType)
		query += ` AND vital_type = $` + strconv.Itoa(len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY date DESC`

	vitals := []model.Vital{}
	if err := sqlx.SelectContext(ctx, exec, &vitals, query, args...); err != nil {
		return nil, util.LogError("[VitalRepo] не удалось получить список показателей", err)
	}

	return vitals, nil
}

// ListForTrends : те же строки, что и List без фильтра типа, но по дате по
// возрастанию — график рисуется слева направо хронологически
func (r *VitalRepository) ListForTrends(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, startDate string, endDate string) ([]model.Vital, error) {
	query := `
		SELECT uuid, owner_uuid, vital_type, value, unit, date, created_at
		FROM vitals
		WHERE owner_uuid = $1
	`
	args := []interface{}{ownerUUID}

	if startDate != "" {
		args = append(args, startDate)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if endDate != "" {
		args = append(args, endDate)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY date ASC`

	vitals := []model.Vital{}
	if err := sqlx.SelectContext(ctx, exec, &vitals, query, args...); err != nil {
		return nil, util.LogError("[VitalRepo] не удалось получить показатели для графиков", err)
	}

	return vitals, nil
}

// Update : перезаписывает поля показателя; fallback на прежние значения
// выполняет сервис до вызова
func (r *VitalRepository) Update(ctx context.Context, exec sqlx.ExtContext, vital *model.Vital) error {
	query := `
		UPDATE vitals
		SET vital_type = $2, value = $3, unit = $4, date = $5
		WHERE uuid = $1
	`
	_, err := exec.ExecContext(ctx, query,
		vital.UUID, vital.VitalType, vital.Value, vital.Unit, vital.Date)
	if err != nil {
		return util.LogError("[VitalRepo] не удалось обновить показатель", err)
	}
	return nil
}

// Delete : удаляет показатель владельца, возвращает число затронутых строк
func (r *VitalRepository) Delete(ctx context.Context, exec sqlx.ExtContext, vitalUUID string, ownerUUID string) (int64, error) {
	result, err := exec.ExecContext(ctx,
		`DELETE FROM vitals WHERE uuid = $1 AND owner_uuid = $2`, vitalUUID, ownerUUID)
	if err != nil {
		return 0, util.LogError("[VitalRepo] не удалось удалить показатель", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("[VitalRepo] не удалось получить число удалённых строк", err)
	}
	return affected, nil
}

// LinkToReport : привязывает показатель к отчёту
func (r *VitalRepository) LinkToReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string, vitalUUID string) error {
	_, err := exec.ExecContext(ctx,
		`INSERT INTO report_vitals (report_uuid, vital_uuid) VALUES ($1, $2)`, reportUUID, vitalUUID)
	if err != nil {
		return util.LogError("[VitalRepo] не удалось привязать показатель к отчёту", err)
	}
	return nil
}

// ListByReport : полные показатели отчёта в порядке привязки
func (r *VitalRepository) ListByReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string) ([]model.Vital, error) {
	query := `
		SELECT v.uuid, v.owner_uuid, v.vital_type, v.value, v.unit, v.date, v.created_at
		FROM vitals AS v
		INNER JOIN report_vitals AS rv ON v.uuid = rv.vital_uuid
		WHERE rv.report_uuid = $1
		ORDER BY rv.id ASC
	`

	vitals := []model.Vital{}
	if err := sqlx.SelectContext(ctx, exec, &vitals, query, reportUUID); err != nil {
		return nil, util.LogError("[VitalRepo] не удалось получить показатели отчёта", err)
	}

	return vitals, nil
}

// ListSummariesByReport : пары тип+значение для сводки в списке отчётов.
// Дубликаты привязок не схлопываются
func (r *VitalRepository) ListSummariesByReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string) ([]model.VitalSummary, error) {
	query := `
		SELECT v.vital_type, v.value
		FROM vitals AS v
		INNER JOIN report_vitals AS rv ON v.uuid = rv.vital_uuid
		WHERE rv.report_uuid = $1
		ORDER BY rv.id ASC
	`

	summaries := []model.VitalSummary{}
	if err := sqlx.SelectContext(ctx, exec, &summaries, query, reportUUID); err != nil {
		return nil, util.LogError("[VitalRepo] не удалось получить сводку показателей", err)
	}

	return summaries, nil
}

// ListReportUUIDs : отчёты, к которым привязан показатель (для инвалидации кэша)
func (r *VitalRepository) ListReportUUIDs(ctx context.Context, exec sqlx.ExtContext, vitalUUID string) ([]string, error) {
	var reportUUIDs []string
	err := sqlx.SelectContext(ctx, exec, &reportUUIDs,
		`SELECT report_uuid FROM report_vitals WHERE vital_uuid = $1`, vitalUUID)
	if err != nil {
		return nil, util.LogError("[VitalRepo] не удалось получить отчёты показателя", err)
	}
	return reportUUIDs, nil
}
