package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"health-wallet/config"
	"health-wallet/internal/model"
	"health-wallet/internal/model/requestresponse"
	"health-wallet/internal/ports"
	"health-wallet/internal/util"

	"github.com/google/uuid"
)

type VitalService struct {
	db              *config.Database
	vitalRepository ports.VitalRepository
	cacheRepository ports.CacheRepository
}

func NewVitalService(
	db *config.Database,
	vitalRepository ports.VitalRepository,
	cacheRepository ports.CacheRepository,
) *VitalService {
	return &VitalService{
		db:              db,
		vitalRepository: vitalRepository,
		cacheRepository: cacheRepository,
	}
}

// AddVital : создаёт показатель; тип, значение и дата обязательны
func (s *VitalService) AddVital(ctx context.Context, vital *model.Vital) (*model.Vital, error) {
	if vital.VitalType == "" || vital.Value == "" || vital.Date.IsZero() {
		return nil, fmt.Errorf("[VitalService] тип, значение и дата обязательны: %w", model.ErrValidation)
	}

	if vital.UUID == "" {
		vital.UUID = uuid.New().String()
	}

	if err := s.vitalRepository.Create(ctx, s.db, vital); err != nil {
		return nil, util.LogError("[VitalService] не удалось сохранить показатель", err)
	}

	return vital, nil
}

// ListVitals : показатели пользователя с фильтрами, по дате по убыванию
func (s *VitalService) ListVitals(ctx context.Context, ownerUUID string, filter model.VitalFilter) ([]requestresponse.VitalResponse, error) {
	vitals, err := s.vitalRepository.List(ctx, s.db, ownerUUID, filter)
	if err != nil {
		return nil, util.LogError("[VitalService] не удалось получить список показателей", err)
	}

	responses := make([]requestresponse.VitalResponse, 0, len(vitals))
	for i := range vitals {
		responses = append(responses, requestresponse.VitalResponseFromModel(&vitals[i]))
	}
	return responses, nil
}

// GetTrends : показатели, сгруппированные по типу для графиков, внутри группы
// по дате по возрастанию. Нечисловые значения ("120/80") отдаются строкой
func (s *VitalService) GetTrends(ctx context.Context, ownerUUID string, startDate string, endDate string) (map[string][]requestresponse.TrendPoint, error) {
	vitals, err := s.vitalRepository.ListForTrends(ctx, s.db, ownerUUID, startDate, endDate)
	if err != nil {
		return nil, util.LogError("[VitalService] не удалось получить показатели для графиков", err)
	}

	grouped := make(map[string][]requestresponse.TrendPoint)
	for i := range vitals {
		vital := &vitals[i]
		grouped[vital.VitalType] = append(grouped[vital.VitalType], requestresponse.TrendPointFromModel(vital))
	}
	return grouped, nil
}

// UpdateVital : частичное обновление показателя владельца. Пустые поля запроса
// сохраняют прежние значения; очистить поле этим запросом нельзя
func (s *VitalService) UpdateVital(ctx context.Context, vitalUUID string, ownerUUID string, req *requestresponse.UpdateVitalRequest) error {
	exec, rollback, commit, err := s.vitalRepository.BeginTX(ctx)
	if err != nil {
		return util.LogError("[VitalService] не удалось начать транзакцию", err)
	}
	defer rollback()

	vital, err := s.vitalRepository.GetOwned(ctx, exec, vitalUUID, ownerUUID)
	if err != nil {
		return fmt.Errorf("[VitalService] показатель не найден: %w", err)
	}

	if req.VitalType != "" {
		vital.VitalType = req.VitalType
	}
	if req.Value != "" {
		vital.Value = req.Value
	}
	if req.Unit != "" {
		vital.Unit = req.Unit
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return fmt.Errorf("[VitalService] некорректная дата: %w", model.ErrValidation)
		}
		vital.Date = date
	}

	if err := s.vitalRepository.Update(ctx, exec, vital); err != nil {
		return util.LogError("[VitalService] не удалось обновить показатель", err)
	}

	reportUUIDs, err := s.vitalRepository.ListReportUUIDs(ctx, exec, vitalUUID)
	if err != nil {
		return util.LogError("[VitalService] не удалось получить отчёты показателя", err)
	}

	if err := commit(); err != nil {
		return util.LogError("[VitalService] не удалось закоммитить транзакцию", err)
	}

	// связанные отчёты несут этот показатель в кэшированном payload
	if err := s.cacheRepository.DeleteReports(ctx, reportUUIDs); err != nil {
		log.Printf("[VitalService] ошибка инвалидации кэша отчётов: %v", err)
	}

	return nil
}

// DeleteVital : удаляет показатель владельца; привязки убирает каскад схемы,
// сами отчёты не трогаются
func (s *VitalService) DeleteVital(ctx context.Context, vitalUUID string, ownerUUID string) error {
	exec, rollback, commit, err := s.vitalRepository.BeginTX(ctx)
	if err != nil {
		return util.LogError("[VitalService] не удалось начать транзакцию", err)
	}
	defer rollback()

	reportUUIDs, err := s.vitalRepository.ListReportUUIDs(ctx, exec, vitalUUID)
	if err != nil {
		return util.LogError("[VitalService] не удалось получить отчёты показателя", err)
	}

	affected, err := s.vitalRepository.Delete(ctx, exec, vitalUUID, ownerUUID)
	if err != nil {
		return util.LogError("[VitalService] не удалось удалить показатель", err)
	}
	if affected == 0 {
		return fmt.Errorf("[VitalService] показатель не найден: %w", model.ErrNotFound)
	}

	if err := commit(); err != nil {
		return util.LogError("[VitalService] не удалось закоммитить транзакцию", err)
	}

	if err := s.cacheRepository.DeleteReports(ctx, reportUUIDs); err != nil {
		log.Printf("[VitalService] ошибка инвалидации кэша отчётов: %v", err)
	}

	return nil
}
