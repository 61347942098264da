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

const dateLayout = "2006-01-02"

type ReportService struct {
	db               *config.Database
	reportRepository ports.ReportRepository
	vitalRepository  ports.VitalRepository
	shareRepository  ports.ShareRepository
	userRepository   ports.UserRepository
	cacheRepository  ports.CacheRepository
	storage          ports.FileStorage
	ttl              time.Duration
}

func NewReportService(
	db *config.Database,
	reportRepository ports.ReportRepository,
	vitalRepository ports.VitalRepository,
	shareRepository ports.ShareRepository,
	userRepository ports.UserRepository,
	cacheRepository ports.CacheRepository,
	storage ports.FileStorage,
	ttl time.Duration,
) *ReportService {
	return &ReportService{
		db:               db,
		reportRepository: reportRepository,
		vitalRepository:  vitalRepository,
		shareRepository:  shareRepository,
		userRepository:   userRepository,
		cacheRepository:  cacheRepository,
		storage:          storage,
		ttl:              ttl,
	}
}

// CreateReport : сохраняет файл отчёта в хранилище и создаёт отчёт вместе с
// переданными показателями в одной транзакции. Элементы vitals без
// обязательных полей молча пропускаются — это контракт, а не недочёт
func (s *ReportService) CreateReport(ctx context.Context, report *model.Report, fileBytes []byte, vitals []requestresponse.VitalPayload) (*model.Report, error) {
	if len(fileBytes) == 0 || report.ReportType == "" || report.Date.IsZero() {
		return nil, fmt.Errorf("[ReportService] файл, тип отчёта и дата обязательны: %w", model.ErrValidation)
	}

	// файл уходит в хранилище до вставки строки; при падении вставки
	// останется осиротевший объект — принятое ограничение, компенсации нет
	if err := s.storage.UploadObject(ctx, report.StoragePath, fileBytes, report.MimeType); err != nil {
		return nil, util.LogError("[ReportService] не удалось сохранить файл отчёта", err)
	}

	exec, rollback, commit, err := s.reportRepository.BeginTX(ctx)
	if err != nil {
		return nil, util.LogError("[ReportService] не удалось начать транзакцию", err)
	}
	defer rollback()

	if err := s.reportRepository.Create(ctx, exec, report); err != nil {
		return nil, util.LogError("[ReportService] не удалось сохранить отчёт в БД", err)
	}

	for _, payload := range vitals {
		if !payload.Valid() {
			continue
		}
		date, err := time.Parse(dateLayout, payload.Date)
		if err != nil {
			continue
		}

		vital := &model.Vital{
			UUID:      uuid.New().String(),
			OwnerUUID: report.OwnerUUID,
			VitalType: payload.VitalType,
			Value:     payload.Value,
			Unit:      payload.Unit,
			Date:      date,
		}

		if err := s.vitalRepository.Create(ctx, exec, vital); err != nil {
			return nil, util.LogError("[ReportService] не удалось сохранить показатель", err)
		}
		if err := s.vitalRepository.LinkToReport(ctx, exec, report.UUID, vital.UUID); err != nil {
			return nil, util.LogError("[ReportService] не удалось привязать показатель", err)
		}
	}

	if err := commit(); err != nil {
		return nil, util.LogError("[ReportService] не удалось закоммитить транзакцию", err)
	}

	log.Printf("[ReportService] отчёт %s успешно создан", report.FileName)
	return report, nil
}

// ListReports : собственные отчёты с фильтрами плюс отчёты, которыми поделились
// с пользователем (фильтры к ним не применяются)
func (s *ReportService) ListReports(ctx context.Context, userUUID string, date string, reportType string) (*requestresponse.ListReportsResponse, error) {
	owned, err := s.reportRepository.ListByOwner(ctx, s.db, userUUID, date, reportType)
	if err != nil {
		return nil, util.LogError("[ReportService] не удалось получить список отчётов", err)
	}

	myReports := make([]requestresponse.ReportEntry, 0, len(owned))
	for i := range owned {
		myReports = append(myReports, s.buildEntry(ctx, &owned[i], ""))
	}

	shared, err := s.reportRepository.ListSharedWith(ctx, s.db, userUUID)
	if err != nil {
		return nil, util.LogError("[ReportService] не удалось получить доступные отчёты", err)
	}

	sharedReports := make([]requestresponse.ReportEntry, 0, len(shared))
	for i := range shared {
		sharedReports = append(sharedReports, s.buildEntry(ctx, &shared[i].Report, shared[i].OwnerName))
	}

	return &requestresponse.ListReportsResponse{
		MyReports:     myReports,
		SharedReports: sharedReports,
	}, nil
}

// buildEntry : дополняет отчёт сводкой показателей и ссылкой на файл.
// Ошибки дополнения не валят весь список
func (s *ReportService) buildEntry(ctx context.Context, report *model.Report, ownerName string) requestresponse.ReportEntry {
	summaries, err := s.vitalRepository.ListSummariesByReport(ctx, s.db, report.UUID)
	if err != nil {
		log.Printf("[ReportService] не удалось получить показатели отчёта %s: %v", report.UUID, err)
		summaries = []model.VitalSummary{}
	}

	fileURL, err := s.storage.GeneratePresignedGetURL(ctx, report.StoragePath, s.ttl)
	if err != nil {
		log.Printf("[ReportService] ошибка генерации pre-signed URL для отчёта %s: %v", report.UUID, err)
		fileURL = ""
	}

	entry := requestresponse.ReportEntryFromModel(report, fileURL, summaries)
	entry.OwnerName = ownerName
	return entry
}

// GetReport : один отчёт с полными показателями. Проверка прав всегда идёт в БД,
// кэшируется только собранный payload
func (s *ReportService) GetReport(ctx context.Context, reportUUID string, userUUID string) (*requestresponse.ReportDetail, error) {
	canView, err := s.shareRepository.CanView(ctx, s.db, reportUUID, userUUID)
	if err != nil {
		return nil, util.LogError("[ReportService] ошибка проверки доступа", err)
	}
	if !canView {
		// не подтверждаем существование отчёта не-владельцу без гранта
		return nil, fmt.Errorf("[ReportService] отчёт недоступен: %w", model.ErrNotFound)
	}

	payload, err := s.cacheRepository.GetReport(ctx, reportUUID)
	if err != nil {
		log.Printf("[ReportService] ошибка чтения кэша: %v", err)
	}

	if payload == nil {
		report, err := s.reportRepository.GetByUUID(ctx, s.db, reportUUID)
		if err != nil {
			return nil, fmt.Errorf("[ReportService] отчёт не найден: %w", err)
		}

		owner, err := s.userRepository.FindByUUID(ctx, s.db, report.OwnerUUID)
		if err != nil {
			return nil, util.LogError("[ReportService] не удалось найти владельца отчёта", err)
		}

		linked, err := s.vitalRepository.ListByReport(ctx, s.db, reportUUID)
		if err != nil {
			return nil, util.LogError("[ReportService] не удалось получить показатели отчёта", err)
		}

		payload = &model.ReportPayload{
			Report:    *report,
			OwnerName: owner.Name,
			Vitals:    linked,
		}

		if err := s.cacheRepository.SetReport(ctx, payload); err != nil {
			log.Printf("[ReportService] ошибка кэширования отчёта: %v", err)
		}
	} else {
		log.Printf("[ReportService] отчёт %s взят из кэша Redis", reportUUID)
	}

	// ссылка короткоживущая, генерируется заново и для кэшированного payload
	fileURL, err := s.storage.GeneratePresignedGetURL(ctx, payload.Report.StoragePath, s.ttl)
	if err != nil {
		log.Printf("[ReportService] ошибка генерации pre-signed URL: %v", err)
		fileURL = ""
	}

	vitals := make([]requestresponse.VitalResponse, 0, len(payload.Vitals))
	for i := range payload.Vitals {
		vitals = append(vitals, requestresponse.VitalResponseFromModel(&payload.Vitals[i]))
	}

	return &requestresponse.ReportDetail{
		ID:         payload.Report.UUID,
		OwnerID:    payload.Report.OwnerUUID,
		OwnerName:  payload.OwnerName,
		FileName:   payload.Report.FileName,
		MimeType:   payload.Report.MimeType,
		ReportType: payload.Report.ReportType,
		Date:       payload.Report.Date.Format(dateLayout),
		CreatedAt:  payload.Report.CreatedAt,
		FileURL:    fileURL,
		Vitals:     vitals,
	}, nil
}

// DeleteReport : удаляет отчёт владельца. Каскад убирает привязки и гранты,
// сами показатели остаются. Файл в хранилище удаляется best-effort
func (s *ReportService) DeleteReport(ctx context.Context, reportUUID string, userUUID string) error {
	isOwner, err := s.shareRepository.IsOwner(ctx, s.db, reportUUID, userUUID)
	if err != nil {
		return util.LogError("[ReportService] ошибка проверки владельца", err)
	}
	if !isOwner {
		return fmt.Errorf("[ReportService] отчёт недоступен: %w", model.ErrNotFound)
	}

	report, err := s.reportRepository.GetByUUID(ctx, s.db, reportUUID)
	if err != nil {
		return fmt.Errorf("[ReportService] отчёт не найден: %w", err)
	}

	if err := s.storage.DeleteObject(ctx, report.StoragePath); err != nil {
		log.Printf("[ReportService] не удалось удалить файл отчёта %s: %v", reportUUID, err)
	}

	if err := s.reportRepository.Delete(ctx, s.db, reportUUID); err != nil {
		return util.LogError("[ReportService] ошибка удаления отчёта из БД", err)
	}

	if err := s.cacheRepository.DeleteReport(ctx, reportUUID); err != nil {
		log.Printf("[ReportService] ошибка удаления отчёта из кэша: %v", err)
	}

	log.Printf("[ReportService] отчёт %s успешно удалён", report.FileName)
	return nil
}
