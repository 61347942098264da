package service

import (
	"context"
	"errors"
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

type ShareService struct {
	db              *config.Database
	shareRepository ports.ShareRepository
	userRepository  ports.UserRepository
	vitalRepository ports.VitalRepository
	cacheRepository ports.CacheRepository
	storage         ports.FileStorage
	ttl             time.Duration
}

func NewShareService(
	db *config.Database,
	shareRepository ports.ShareRepository,
	userRepository ports.UserRepository,
	vitalRepository ports.VitalRepository,
	cacheRepository ports.CacheRepository,
	storage ports.FileStorage,
	ttl time.Duration,
) *ShareService {
	return &ShareService{
		db:              db,
		shareRepository: shareRepository,
		userRepository:  userRepository,
		vitalRepository: vitalRepository,
		cacheRepository: cacheRepository,
		storage:         storage,
		ttl:             ttl,
	}
}

// GrantAccess : выдаёт или обновляет доступ к отчёту по email получателя.
// Повторный вызов с той же парой отчёт-получатель идемпотентен: существующий
// грант обновляется, дубликат не создаётся. Второе возвращаемое значение —
// true, если грант был создан впервые
func (s *ShareService) GrantAccess(ctx context.Context, ownerUUID string, reportUUID string, granteeEmail string, accessType string) (*requestresponse.SharedWithData, bool, error) {
	if granteeEmail == "" {
		return nil, false, fmt.Errorf("[ShareService] email получателя обязателен: %w", model.ErrValidation)
	}
	if accessType == "" {
		accessType = "read"
	}

	exec, rollback, commit, err := s.shareRepository.BeginTX(ctx)
	if err != nil {
		return nil, false, util.LogError("[ShareService] не удалось начать транзакцию", err)
	}
	defer rollback()

	isOwner, err := s.shareRepository.IsOwner(ctx, exec, reportUUID, ownerUUID)
	if err != nil {
		return nil, false, util.LogError("[ShareService] ошибка проверки владельца", err)
	}
	if !isOwner {
		return nil, false, fmt.Errorf("[ShareService] отчёт недоступен: %w", model.ErrNotFound)
	}

	grantee, err := s.userRepository.FindByEmail(ctx, exec, granteeEmail)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, false, fmt.Errorf("[ShareService] пользователь с таким email не найден: %w", model.ErrNotFound)
		}
		return nil, false, util.LogError("[ShareService] ошибка поиска получателя", err)
	}

	if grantee.UUID == ownerUUID {
		return nil, false, fmt.Errorf("[ShareService] нельзя поделиться отчётом с самим собой: %w", model.ErrValidation)
	}

	existing, err := s.shareRepository.FindGrant(ctx, exec, reportUUID, grantee.UUID)
	if err != nil {
		return nil, false, util.LogError("[ShareService] ошибка поиска гранта", err)
	}

	grant := &model.SharedAccess{
		UUID:           uuid.New().String(),
		ReportUUID:     reportUUID,
		OwnerUUID:      ownerUUID,
		SharedWithUUID: grantee.UUID,
		AccessType:     accessType,
	}
	if existing != nil {
		grant.UUID = existing.UUID
	}

	if err := s.shareRepository.Upsert(ctx, exec, grant); err != nil {
		return nil, false, util.LogError("[ShareService] не удалось сохранить грант", err)
	}

	if err := commit(); err != nil {
		return nil, false, util.LogError("[ShareService] не удалось закоммитить транзакцию", err)
	}

	if err := s.cacheRepository.DeleteReport(ctx, reportUUID); err != nil {
		log.Printf("[ShareService] ошибка инвалидации кэша отчёта: %v", err)
	}

	log.Printf("[ShareService] доступ к отчёту %s выдан пользователю %s", reportUUID, grantee.UUID)

	return &requestresponse.SharedWithData{
		ID:         grantee.UUID,
		Name:       grantee.Name,
		Email:      grantee.Email,
		AccessType: accessType,
	}, existing == nil, nil
}

// ListGrants : список грантов отчёта, доступен только владельцу
func (s *ShareService) ListGrants(ctx context.Context, ownerUUID string, reportUUID string) ([]requestresponse.GrantEntry, error) {
	isOwner, err := s.shareRepository.IsOwner(ctx, s.db, reportUUID, ownerUUID)
	if err != nil {
		return nil, util.LogError("[ShareService] ошибка проверки владельца", err)
	}
	if !isOwner {
		return nil, fmt.Errorf("[ShareService] отчёт недоступен: %w", model.ErrNotFound)
	}

	grants, err := s.shareRepository.ListByReport(ctx, s.db, reportUUID)
	if err != nil {
		return nil, util.LogError("[ShareService] не удалось получить список грантов", err)
	}

	entries := make([]requestresponse.GrantEntry, 0, len(grants))
	for i := range grants {
		entries = append(entries, requestresponse.GrantEntryFromModel(&grants[i]))
	}
	return entries, nil
}

// ListSharedWithMe : отчёты, к которым пользователю выдали доступ
func (s *ShareService) ListSharedWithMe(ctx context.Context, userUUID string) ([]requestresponse.ReportEntry, error) {
	shared, err := s.shareRepository.ListSharedWithUser(ctx, s.db, userUUID)
	if err != nil {
		return nil, util.LogError("[ShareService] не удалось получить доступные отчёты", err)
	}

	entries := make([]requestresponse.ReportEntry, 0, len(shared))
	for i := range shared {
		report := &shared[i].Report

		summaries, err := s.vitalRepository.ListSummariesByReport(ctx, s.db, report.UUID)
		if err != nil {
			log.Printf("[ShareService] не удалось получить показатели отчёта %s: %v", report.UUID, err)
			summaries = []model.VitalSummary{}
		}

		fileURL, err := s.storage.GeneratePresignedGetURL(ctx, report.StoragePath, s.ttl)
		if err != nil {
			log.Printf("[ShareService] ошибка генерации pre-signed URL для отчёта %s: %v", report.UUID, err)
			fileURL = ""
		}

		entry := requestresponse.ReportEntryFromModel(report, fileURL, summaries)
		entry.OwnerName = shared[i].OwnerName
		entries = append(entries, entry)
	}
	return entries, nil
}

// ListSharedByMe : гранты, выданные пользователем, с данными отчёта и получателя
func (s *ShareService) ListSharedByMe(ctx context.Context, userUUID string) ([]requestresponse.SharedByMeEntry, error) {
	listings, err := s.shareRepository.ListSharedByOwner(ctx, s.db, userUUID)
	if err != nil {
		return nil, util.LogError("[ShareService] не удалось получить выданные гранты", err)
	}

	entries := make([]requestresponse.SharedByMeEntry, 0, len(listings))
	for i := range listings {
		entries = append(entries, requestresponse.SharedByMeEntryFromModel(&listings[i]))
	}
	return entries, nil
}

// RevokeAccess : отзывает грант; отзыв несуществующего гранта — not found
func (s *ShareService) RevokeAccess(ctx context.Context, ownerUUID string, reportUUID string, sharedWithUUID string) error {
	isOwner, err := s.shareRepository.IsOwner(ctx, s.db, reportUUID, ownerUUID)
	if err != nil {
		return util.LogError("[ShareService] ошибка проверки владельца", err)
	}
	if !isOwner {
		return fmt.Errorf("[ShareService] отчёт недоступен: %w", model.ErrNotFound)
	}

	affected, err := s.shareRepository.Revoke(ctx, s.db, reportUUID, sharedWithUUID)
	if err != nil {
		return util.LogError("[ShareService] не удалось отозвать доступ", err)
	}
	if affected == 0 {
		return fmt.Errorf("[ShareService] грант не найден: %w", model.ErrNotFound)
	}

	if err := s.cacheRepository.DeleteReport(ctx, reportUUID); err != nil {
		log.Printf("[ShareService] ошибка инвалидации кэша отчёта: %v", err)
	}

	log.Printf("[ShareService] доступ пользователя %s к отчёту %s отозван", sharedWithUUID, reportUUID)
	return nil
}
