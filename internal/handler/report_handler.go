package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"health-wallet/config"
	"health-wallet/internal/model"
	"health-wallet/internal/model/requestresponse"
	"health-wallet/internal/ports"
	"health-wallet/internal/security"
	"health-wallet/internal/util"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// допустимые типы файлов отчёта
var allowedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

type ReportHandler struct {
	ports.ReportService
	cfg *config.UploadConfig
}

func NewReportHandler(reportService ports.ReportService, cfg *config.UploadConfig) *ReportHandler {
	return &ReportHandler{reportService, cfg}
}

// UploadReport godoc
// @Summary Загрузка медицинского отчёта
// @Description Принимает файл отчёта (PDF, JPEG или PNG, до 10 МБ), тип, дату и
// опциональный JSON-массив показателей в поле vitals
// @Tags Reports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл отчёта"
// @Param report_type formData string true "Тип отчёта, например Blood Test"
// @Param date formData string true "Дата отчёта в формате YYYY-MM-DD"
// @Param vitals formData string false "JSON-массив показателей [{vital_type,value,unit,date}]"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.UploadReportResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 413 {object} requestresponse.ErrorResponse "Файл слишком большой"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/reports/upload [post]
// @Security BearerAuth
func (h *ReportHandler) UploadReport(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxSizeBytes+1<<20)
	if err := r.ParseMultipartForm(h.cfg.MaxSizeBytes); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		util.HandleError(w, "файл не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		util.HandleError(w, "ошибка чтения файла", http.StatusInternalServerError)
		return
	}

	if int64(len(fileBytes)) > h.cfg.MaxSizeBytes {
		util.HandleError(w, "файл превышает допустимый размер", http.StatusRequestEntityTooLarge)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(fileBytes)
	}
	if !allowedMimeTypes[mimeType] {
		util.HandleError(w, "допустимы только файлы PDF, JPEG и PNG", http.StatusBadRequest)
		return
	}

	reportType := r.FormValue("report_type")
	if reportType == "" {
		util.HandleError(w, "тип отчёта обязателен", http.StatusBadRequest)
		return
	}

	date, err := time.Parse(dateLayout, r.FormValue("date"))
	if err != nil {
		util.HandleError(w, "дата отчёта обязательна в формате YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	// показатели опциональны; битый JSON не валит загрузку отчёта
	var vitals []requestresponse.VitalPayload
	if vitalsStr := r.FormValue("vitals"); vitalsStr != "" {
		if err := json.Unmarshal([]byte(vitalsStr), &vitals); err != nil {
			log.Printf("[ReportHandler] некорректный JSON показателей, поле пропущено: %v", err)
			vitals = nil
		}
	}

	fileExt := filepath.Ext(header.Filename)
	fileName := strings.TrimSuffix(header.Filename, fileExt)
	storagePath := fmt.Sprintf("users/%s/reports/%s-%s%s",
		claims.UserUUID,
		url.PathEscape(fileName),
		uuid.New().String()[:8],
		fileExt,
	)

	report := &model.Report{
		UUID:        uuid.New().String(),
		OwnerUUID:   claims.UserUUID,
		FileName:    header.Filename,
		StoragePath: storagePath,
		MimeType:    mimeType,
		ReportType:  reportType,
		Date:        date,
	}

	created, err := h.ReportService.CreateReport(r.Context(), report, fileBytes, vitals)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.UploadReportResponse{
		Message: "отчёт успешно загружен",
		Report: requestresponse.ReportMeta{
			ID:         created.UUID,
			FileName:   created.FileName,
			ReportType: created.ReportType,
			Date:       created.Date.Format(dateLayout),
		},
	})
}

// ListReports godoc
// @Summary Список отчётов
// @Description Возвращает собственные отчёты пользователя с фильтрами по дате и типу,
// а также отчёты, которыми с ним поделились
// @Tags Reports
// @Produce json
// @Param date query string false "Фильтр по дате YYYY-MM-DD"
// @Param report_type query string false "Фильтр по типу отчёта"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListReportsResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/reports [get]
// @Security BearerAuth
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	date := r.URL.Query().Get("date")
	reportType := r.URL.Query().Get("report_type")

	resp, err := h.ReportService.ListReports(r.Context(), claims.UserUUID, date, reportType)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, resp)
}

// GetReport godoc
// @Summary Один отчёт
// @Description Возвращает отчёт с показателями и короткоживущей ссылкой на файл.
// Доступен владельцу и пользователям с грантом
// @Tags Reports
// @Produce json
// @Param report_id path string true "UUID отчёта"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ReportDetail
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Отчёт не найден или недоступен"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/reports/{report_id} [get]
// @Security BearerAuth
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	reportUUID := chi.URLParam(r, "report_id")
	if reportUUID == "" {
		util.HandleError(w, "ID отчёта обязателен", http.StatusBadRequest)
		return
	}

	detail, err := h.ReportService.GetReport(r.Context(), reportUUID, claims.UserUUID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, detail)
}

// DeleteReport godoc
// @Summary Удаление отчёта
// @Description Удаляет отчёт, его файл и все выданные на него гранты. Доступно только владельцу
// @Tags Reports
// @Produce json
// @Param report_id path string true "UUID отчёта"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Отчёт не найден или недоступен"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/reports/{report_id} [delete]
// @Security BearerAuth
func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	reportUUID := chi.URLParam(r, "report_id")
	if reportUUID == "" {
		util.HandleError(w, "ID отчёта обязателен", http.StatusBadRequest)
		return
	}

	if err := h.ReportService.DeleteReport(r.Context(), reportUUID, claims.UserUUID); err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.SuccessResponse{
		Message: "отчёт удалён",
	})
}
