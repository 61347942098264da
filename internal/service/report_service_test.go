package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"health-wallet/config"
	"health-wallet/internal/model"
	"health-wallet/internal/model/requestresponse"
	"health-wallet/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== Моки репозиториев =====

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Create(ctx context.Context, exec sqlx.ExtContext, report *model.Report) error {
	return m.Called(ctx, exec, report).Error(0)
}

func (m *MockReportRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, reportUUID string) (*model.Report, error) {
	args := m.Called(ctx, exec, reportUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, date string, reportType string) ([]model.Report, error) {
	args := m.Called(ctx, exec, ownerUUID, date, reportType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *MockReportRepository) ListSharedWith(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.SharedReport, error) {
	args := m.Called(ctx, exec, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SharedReport), args.Error(1)
}

func (m *MockReportRepository) Delete(ctx context.Context, exec sqlx.ExtContext, reportUUID string) error {
	return m.Called(ctx, exec, reportUUID).Error(0)
}

func (m *MockReportRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	return args.Get(0).(sqlx.ExtContext), args.Get(1).(func() error), args.Get(2).(func() error), args.Error(3)
}

type MockVitalRepository struct{ mock.Mock }

func (m *MockVitalRepository) Create(ctx context.Context, exec sqlx.ExtContext, vital *model.Vital) error {
	return m.Called(ctx, exec, vital).Error(0)
}

func (m *MockVitalRepository) GetOwned(ctx context.Context, exec sqlx.ExtContext, vitalUUID string, ownerUUID string) (*model.Vital, error) {
	args := m.Called(ctx, exec, vitalUUID, ownerUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vital), args.Error(1)
}

func (m *MockVitalRepository) List(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, filter model.VitalFilter) ([]model.Vital, error) {
	args := m.Called(ctx, exec, ownerUUID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vital), args.Error(1)
}

func (m *MockVitalRepository) ListForTrends(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, startDate string, endDate string) ([]model.Vital, error) {
	args := m.Called(ctx, exec, ownerUUID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vital), args.Error(1)
}

func (m *MockVitalRepository) Update(ctx context.Context, exec sqlx.ExtContext, vital *model.Vital) error {
	return m.Called(ctx, exec, vital).Error(0)
}

func (m *MockVitalRepository) Delete(ctx context.Context, exec sqlx.ExtContext, vitalUUID string, ownerUUID string) (int64, error) {
	args := m.Called(ctx, exec, vitalUUID, ownerUUID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVitalRepository) LinkToReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string, vitalUUID string) error {
	return m.Called(ctx, exec, reportUUID, vitalUUID).Error(0)
}

func (m *MockVitalRepository) ListByReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string) ([]model.Vital, error) {
	args := m.Called(ctx, exec, reportUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vital), args.Error(1)
}

func (m *MockVitalRepository) ListSummariesByReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string) ([]model.VitalSummary, error) {
	args := m.Called(ctx, exec, reportUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VitalSummary), args.Error(1)
}

func (m *MockVitalRepository) ListReportUUIDs(ctx context.Context, exec sqlx.ExtContext, vitalUUID string) ([]string, error) {
	args := m.Called(ctx, exec, vitalUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVitalRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	return args.Get(0).(sqlx.ExtContext), args.Get(1).(func() error), args.Get(2).(func() error), args.Error(3)
}

type MockShareRepository struct{ mock.Mock }

func (m *MockShareRepository) CanView(ctx context.Context, exec sqlx.ExtContext, reportUUID string, userUUID string) (bool, error) {
	args := m.Called(ctx, exec, reportUUID, userUUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShareRepository) IsOwner(ctx context.Context, exec sqlx.ExtContext, reportUUID string, ownerUUID string) (bool, error) {
	args := m.Called(ctx, exec, reportUUID, ownerUUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShareRepository) FindGrant(ctx context.Context, exec sqlx.ExtContext, reportUUID string, sharedWithUUID string) (*model.SharedAccess, error) {
	args := m.Called(ctx, exec, reportUUID, sharedWithUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SharedAccess), args.Error(1)
}

func (m *MockShareRepository) Upsert(ctx context.Context, exec sqlx.ExtContext, grant *model.SharedAccess) error {
	return m.Called(ctx, exec, grant).Error(0)
}

func (m *MockShareRepository) ListByReport(ctx context.Context, exec sqlx.ExtContext, reportUUID string) ([]model.Grant, error) {
	args := m.Called(ctx, exec, reportUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Grant), args.Error(1)
}

func (m *MockShareRepository) ListSharedByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.ShareListing, error) {
	args := m.Called(ctx, exec, ownerUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShareListing), args.Error(1)
}

func (m *MockShareRepository) ListSharedWithUser(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.SharedReport, error) {
	args := m.Called(ctx, exec, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SharedReport), args.Error(1)
}

func (m *MockShareRepository) Revoke(ctx context.Context, exec sqlx.ExtContext, reportUUID string, sharedWithUUID string) (int64, error) {
	args := m.Called(ctx, exec, reportUUID, sharedWithUUID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShareRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	return args.Get(0).(sqlx.ExtContext), args.Get(1).(func() error), args.Get(2).(func() error), args.Error(3)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	args := m.Called(ctx, exec, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	args := m.Called(ctx, exec, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	args := m.Called(ctx, exec, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockCacheRepository struct{ mock.Mock }

func (m *MockCacheRepository) SetReport(ctx context.Context, report *model.ReportPayload) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockCacheRepository) GetReport(ctx context.Context, reportUUID string) (*model.ReportPayload, error) {
	args := m.Called(ctx, reportUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportPayload), args.Error(1)
}

func (m *MockCacheRepository) DeleteReport(ctx context.Context, reportUUID string) error {
	return m.Called(ctx, reportUUID).Error(0)
}

func (m *MockCacheRepository) DeleteReports(ctx context.Context, reportUUIDs []string) error {
	return m.Called(ctx, reportUUIDs).Error(0)
}

type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) UploadObject(ctx context.Context, key string, body []byte, contentType string) error {
	return m.Called(ctx, key, body, contentType).Error(0)
}

func (m *MockFileStorage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockJWTService struct{ mock.Mock }

func (m *MockJWTService) GenerateAccessToken(userUUID string) (string, error) {
	args := m.Called(userUUID)
	return args.String(0), args.Error(1)
}

type fakeTx struct{}

func (f *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (f *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return &sql.Row{}
}
func (f *fakeTx) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return &sqlx.Row{}
}
func (f *fakeTx) BindNamed(query string, arg interface{}) (string, []interface{}, error) {
	return "", nil, nil
}
func (f *fakeTx) DriverName() string         { return "fake" }
func (f *fakeTx) Rebind(query string) string { return query }

// ===== Функция для создания сервиса с моками =====

func newTestReportService() (*service.ReportService, *MockReportRepository, *MockVitalRepository, *MockShareRepository, *MockUserRepository, *MockCacheRepository, *MockFileStorage) {
	reportRepo := new(MockReportRepository)
	vitalRepo := new(MockVitalRepository)
	shareRepo := new(MockShareRepository)
	userRepo := new(MockUserRepository)
	cacheRepo := new(MockCacheRepository)
	storage := new(MockFileStorage)

	svc := service.NewReportService(
		&config.Database{},
		reportRepo,
		vitalRepo,
		shareRepo,
		userRepo,
		cacheRepo,
		storage,
		time.Minute,
	)

	return svc, reportRepo, vitalRepo, shareRepo, userRepo, cacheRepo, storage
}

// ===== Тесты CreateReport =====

func TestCreateReport_Success(t *testing.T) {
	svc, reportRepo, vitalRepo, _, _, _, storage := newTestReportService()
	ctx := context.Background()

	report := &model.Report{
		UUID:        "report1",
		OwnerUUID:   "user1",
		FileName:    "analysis.pdf",
		StoragePath: "users/user1/reports/analysis-abc12345.pdf",
		MimeType:    "application/pdf",
		ReportType:  "Blood Test",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	fileBytes := []byte("%PDF-1.4")

	vitals := []requestresponse.VitalPayload{
		{VitalType: "Sugar", Value: "95", Unit: "mg/dL", Date: "2024-01-10"},
		{VitalType: "", Value: "120/80", Date: "2024-01-10"}, // пропускается: нет типа
		{VitalType: "BP", Value: "120/80", Date: "10.01.2024"}, // пропускается: битая дата
	}

	mockTx := &fakeTx{}
	storage.On("UploadObject", ctx, report.StoragePath, fileBytes, "application/pdf").Return(nil).Once()
	reportRepo.On("BeginTX", ctx).Return(mockTx, func() error { return nil }, func() error { return nil }, nil).Once()
	reportRepo.On("Create", ctx, mockTx, report).Return(nil).Once()
	vitalRepo.On("Create", ctx, mockTx, mock.MatchedBy(func(v *model.Vital) bool {
		return v.VitalType == "Sugar" && v.Value == "95" && v.OwnerUUID == "user1" && v.UUID != ""
	})).Return(nil).Once()
	vitalRepo.On("LinkToReport", ctx, mockTx, "report1", mock.Anything).Return(nil).Once()

	created, err := svc.CreateReport(ctx, report, fileBytes, vitals)

	require.NoError(t, err)
	assert.Equal(t, "report1", created.UUID)
	storage.AssertExpectations(t)
	reportRepo.AssertExpectations(t)
	vitalRepo.AssertExpectations(t)
}

func TestCreateReport_Validation(t *testing.T) {
	svc, _, _, _, _, _, _ := newTestReportService()
	ctx := context.Background()

	report := &model.Report{
		UUID:       "report1",
		OwnerUUID:  "user1",
		ReportType: "Blood Test",
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	_, err := svc.CreateReport(ctx, report, nil, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestCreateReport_StorageError(t *testing.T) {
	svc, _, _, _, _, _, storage := newTestReportService()
	ctx := context.Background()

	report := &model.Report{
		UUID:        "report1",
		OwnerUUID:   "user1",
		StoragePath: "users/user1/reports/analysis-abc12345.pdf",
		MimeType:    "application/pdf",
		ReportType:  "Blood Test",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	fileBytes := []byte("%PDF-1.4")

	storage.On("UploadObject", ctx, report.StoragePath, fileBytes, "application/pdf").Return(errors.New("s3 error")).Once()

	_, err := svc.CreateReport(ctx, report, fileBytes, nil)

	require.Error(t, err)
	storage.AssertExpectations(t)
}

func TestCreateReport_RepositoryError(t *testing.T) {
	svc, reportRepo, _, _, _, _, storage := newTestReportService()
	ctx := context.Background()

	report := &model.Report{
		UUID:        "report1",
		OwnerUUID:   "user1",
		StoragePath: "users/user1/reports/analysis-abc12345.pdf",
		MimeType:    "application/pdf",
		ReportType:  "Blood Test",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	fileBytes := []byte("%PDF-1.4")

	mockTx := &fakeTx{}
	storage.On("UploadObject", ctx, report.StoragePath, fileBytes, "application/pdf").Return(nil).Once()
	reportRepo.On("BeginTX", ctx).Return(mockTx, func() error { return nil }, func() error { return nil }, nil).Once()
	reportRepo.On("Create", ctx, mockTx, report).Return(errors.New("db error")).Once()

	_, err := svc.CreateReport(ctx, report, fileBytes, nil)

	require.Error(t, err)
	reportRepo.AssertExpectations(t)
}

// ===== Тесты GetReport =====

func TestGetReport(t *testing.T) {
	ctx := context.Background()
	reportDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	report := model.Report{
		UUID:        "report1",
		OwnerUUID:   "user1",
		FileName:    "analysis.pdf",
		StoragePath: "users/user1/reports/analysis-abc12345.pdf",
		MimeType:    "application/pdf",
		ReportType:  "Blood Test",
		Date:        reportDate,
	}
	payload := &model.ReportPayload{
		Report:    report,
		OwnerName: "Иван Иванов",
		Vitals: []model.Vital{
			{UUID: "vital1", VitalType: "Sugar", Value: "95", Unit: "mg/dL", Date: reportDate},
		},
	}

	tests := []struct {
		name        string
		userUUID    string
		setupMocks  func(reportRepo *MockReportRepository, vitalRepo *MockVitalRepository, shareRepo *MockShareRepository, userRepo *MockUserRepository, cacheRepo *MockCacheRepository, storage *MockFileStorage)
		expectedErr error
	}{
		{
			name:     "Report from cache",
			userUUID: "user1",
			setupMocks: func(reportRepo *MockReportRepository, vitalRepo *MockVitalRepository, shareRepo *MockShareRepository, userRepo *MockUserRepository, cacheRepo *MockCacheRepository, storage *MockFileStorage) {
				shareRepo.On("CanView", ctx, mock.Anything, "report1", "user1").Return(true, nil).Once()
				cacheRepo.On("GetReport", ctx, "report1").Return(payload, nil).Once()
				storage.On("GeneratePresignedGetURL", ctx, report.StoragePath, time.Minute).Return("http://get-url", nil).Once()
			},
		},
		{
			name:     "Report from DB on cache miss",
			userUUID: "user1",
			setupMocks: func(reportRepo *MockReportRepository, vitalRepo *MockVitalRepository, shareRepo *MockShareRepository, userRepo *MockUserRepository, cacheRepo *MockCacheRepository, storage *MockFileStorage) {
				shareRepo.On("CanView", ctx, mock.Anything, "report1", "user1").Return(true, nil).Once()
				cacheRepo.On("GetReport", ctx, "report1").Return(nil, nil).Once()
				reportRepo.On("GetByUUID", ctx, mock.Anything, "report1").Return(&report, nil).Once()
				userRepo.On("FindByUUID", ctx, mock.Anything, "user1").Return(&model.User{UUID: "user1", Name: "Иван Иванов"}, nil).Once()
				vitalRepo.On("ListByReport", ctx, mock.Anything, "report1").Return(payload.Vitals, nil).Once()
				cacheRepo.On("SetReport", ctx, mock.Anything).Return(nil).Once()
				storage.On("GeneratePresignedGetURL", ctx, report.StoragePath, time.Minute).Return("http://get-url", nil).Once()
			},
		},
		{
			name:     "No access",
			userUUID: "stranger",
			setupMocks: func(reportRepo *MockReportRepository, vitalRepo *MockVitalRepository, shareRepo *MockShareRepository, userRepo *MockUserRepository, cacheRepo *MockCacheRepository, storage *MockFileStorage) {
				shareRepo.On("CanView", ctx, mock.Anything, "report1", "stranger").Return(false, nil).Once()
			},
			expectedErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reportRepo, vitalRepo, shareRepo, userRepo, cacheRepo, storage := newTestReportService()
			tt.setupMocks(reportRepo, vitalRepo, shareRepo, userRepo, cacheRepo, storage)

			detail, err := svc.GetReport(ctx, "report1", tt.userUUID)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "report1", detail.ID)
			assert.Equal(t, "Иван Иванов", detail.OwnerName)
			assert.Equal(t, "2024-01-10", detail.Date)
			assert.Equal(t, "http://get-url", detail.FileURL)
			require.Len(t, detail.Vitals, 1)
			assert.Equal(t, "Sugar", detail.Vitals[0].VitalType)

			shareRepo.AssertExpectations(t)
			cacheRepo.AssertExpectations(t)
			storage.AssertExpectations(t)
			reportRepo.AssertExpectations(t)
		})
	}
}

// ===== Тесты DeleteReport =====

func TestDeleteReport_Success(t *testing.T) {
	svc, reportRepo, _, shareRepo, _, cacheRepo, storage := newTestReportService()
	ctx := context.Background()

	report := &model.Report{
		UUID:        "report1",
		OwnerUUID:   "user1",
		FileName:    "analysis.pdf",
		StoragePath: "users/user1/reports/analysis-abc12345.pdf",
	}

	shareRepo.On("IsOwner", ctx, mock.Anything, "report1", "user1").Return(true, nil).Once()
	reportRepo.On("GetByUUID", ctx, mock.Anything, "report1").Return(report, nil).Once()
	storage.On("DeleteObject", ctx, report.StoragePath).Return(nil).Once()
	reportRepo.On("Delete", ctx, mock.Anything, "report1").Return(nil).Once()
	cacheRepo.On("DeleteReport", ctx, "report1").Return(nil).Once()

	err := svc.DeleteReport(ctx, "report1", "user1")

	require.NoError(t, err)
	shareRepo.AssertExpectations(t)
	reportRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
	cacheRepo.AssertExpectations(t)
}

func TestDeleteReport_NotOwner(t *testing.T) {
	svc, _, _, shareRepo, _, _, _ := newTestReportService()
	ctx := context.Background()

	shareRepo.On("IsOwner", ctx, mock.Anything, "report1", "stranger").Return(false, nil).Once()

	err := svc.DeleteReport(ctx, "report1", "stranger")

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestDeleteReport_StorageErrorIgnored(t *testing.T) {
	svc, reportRepo, _, shareRepo, _, cacheRepo, storage := newTestReportService()
	ctx := context.Background()

	report := &model.Report{
		UUID:        "report1",
		OwnerUUID:   "user1",
		StoragePath: "users/user1/reports/analysis-abc12345.pdf",
	}

	// файл в хранилище удаляется best-effort, ошибка не прерывает удаление
	shareRepo.On("IsOwner", ctx, mock.Anything, "report1", "user1").Return(true, nil).Once()
	reportRepo.On("GetByUUID", ctx, mock.Anything, "report1").Return(report, nil).Once()
	storage.On("DeleteObject", ctx, report.StoragePath).Return(errors.New("s3 error")).Once()
	reportRepo.On("Delete", ctx, mock.Anything, "report1").Return(nil).Once()
	cacheRepo.On("DeleteReport", ctx, "report1").Return(nil).Once()

	err := svc.DeleteReport(ctx, "report1", "user1")

	require.NoError(t, err)
	reportRepo.AssertExpectations(t)
}

// ===== Тесты ListReports =====

func TestListReports_Success(t *testing.T) {
	svc, reportRepo, vitalRepo, _, _, _, storage := newTestReportService()
	ctx := context.Background()
	reportDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	owned := []model.Report{
		{UUID: "report1", OwnerUUID: "user1", FileName: "analysis.pdf", StoragePath: "p1", Date: reportDate},
	}
	shared := []model.SharedReport{
		{
			Report:    model.Report{UUID: "report2", OwnerUUID: "user2", FileName: "mri.png", StoragePath: "p2", Date: reportDate},
			OwnerName: "Пётр Петров",
		},
	}

	reportRepo.On("ListByOwner", ctx, mock.Anything, "user1", "", "").Return(owned, nil).Once()
	reportRepo.On("ListSharedWith", ctx, mock.Anything, "user1").Return(shared, nil).Once()
	vitalRepo.On("ListSummariesByReport", ctx, mock.Anything, "report1").Return([]model.VitalSummary{{Type: "Sugar", Value: "95"}}, nil).Once()
	vitalRepo.On("ListSummariesByReport", ctx, mock.Anything, "report2").Return([]model.VitalSummary{}, nil).Once()
	storage.On("GeneratePresignedGetURL", ctx, "p1", time.Minute).Return("url1", nil).Once()
	storage.On("GeneratePresignedGetURL", ctx, "p2", time.Minute).Return("url2", nil).Once()

	resp, err := svc.ListReports(ctx, "user1", "", "")

	require.NoError(t, err)
	require.Len(t, resp.MyReports, 1)
	require.Len(t, resp.SharedReports, 1)
	assert.Equal(t, "url1", resp.MyReports[0].FileURL)
	assert.Equal(t, []model.VitalSummary{{Type: "Sugar", Value: "95"}}, resp.MyReports[0].Vitals)
	assert.Equal(t, "Пётр Петров", resp.SharedReports[0].OwnerName)
	assert.Empty(t, resp.MyReports[0].OwnerName)

	reportRepo.AssertExpectations(t)
	vitalRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestListReports_DBError(t *testing.T) {
	svc, reportRepo, _, _, _, _, _ := newTestReportService()
	ctx := context.Background()

	reportRepo.On("ListByOwner", ctx, mock.Anything, "user1", "", "").Return(nil, errors.New("db error")).Once()

	_, err := svc.ListReports(ctx, "user1", "", "")

	require.Error(t, err)
}
