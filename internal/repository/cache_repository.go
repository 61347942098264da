package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"health-wallet/config"
	"health-wallet/internal/model"
	"health-wallet/internal/util"

	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

// SetReport : кладёт собранный ответ по отчёту в кэш
func (r *CacheRepository) SetReport(ctx context.Context, report *model.ReportPayload) error {
	data, err := json.Marshal(report)
	if err != nil {
		return util.LogError("ошибка сериализации отчёта", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(report.Report.UUID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}

	return nil
}

// GetReport : возвращает отчёт из кэша; nil, если записи нет
func (r *CacheRepository) GetReport(ctx context.Context, reportUUID string) (*model.ReportPayload, error) {
	val, err := r.client.Client.Get(ctx, r.key(reportUUID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения отчёта из Redis", err)
	}

	var report model.ReportPayload
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		return nil, util.LogError("ошибка десериализации отчёта из кэша", err)
	}
	return &report, nil
}

// DeleteReport : инвалидирует кэш отчёта
func (r *CacheRepository) DeleteReport(ctx context.Context, reportUUID string) error {
	if err := r.client.Client.Del(ctx, r.key(reportUUID)).Err(); err != nil {
		return util.LogError("ошибка удаления отчёта из Redis", err)
	}
	return nil
}

// DeleteReports : инвалидирует несколько отчётов одним запросом
func (r *CacheRepository) DeleteReports(ctx context.Context, reportUUIDs []string) error {
	if len(reportUUIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(reportUUIDs))
	for _, reportUUID := range reportUUIDs {
		keys = append(keys, r.key(reportUUID))
	}

	if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
		return util.LogError("ошибка пакетного удаления отчётов из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(reportUUID string) string {
	return fmt.Sprintf("report:%s", reportUUID)
}
