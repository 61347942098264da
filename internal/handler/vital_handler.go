package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"health-wallet/internal/model"
	"health-wallet/internal/model/requestresponse"
	"health-wallet/internal/ports"
	"health-wallet/internal/security"
	"health-wallet/internal/util"

	"github.com/go-chi/chi/v5"
)

type VitalHandler struct {
	ports.VitalService
}

func NewVitalHandler(vitalService ports.VitalService) *VitalHandler {
	return &VitalHandler{vitalService}
}

// AddVital godoc
// @Summary Добавление показателя здоровья
// @Description Сохраняет единичное измерение (сахар, давление и т.п.).
// Значение принимается текстом, нечисловые значения вроде 120/80 допустимы
// @Tags Vitals
// @Accept json
// @Produce json
// @Param body body requestresponse.AddVitalRequest true "Тип, значение, единица и дата"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.AddVitalResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/vitals [post]
// @Security BearerAuth
func (h *VitalHandler) AddVital(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.AddVitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			util.HandleError(w, "дата обязательна в формате YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	vital := &model.Vital{
		OwnerUUID: claims.UserUUID,
		VitalType: req.VitalType,
		Value:     req.Value,
		Unit:      req.Unit,
		Date:      date,
	}

	created, err := h.VitalService.AddVital(r.Context(), vital)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.AddVitalResponse{
		Message: "показатель добавлен",
		Vital:   requestresponse.VitalResponseFromModel(created),
	})
}

// ListVitals godoc
// @Summary Список показателей
// @Description Возвращает показатели пользователя с фильтрами по типу и периоду,
// отсортированные по дате по убыванию
// @Tags Vitals
// @Produce json
// @Param vital_type query string false "Фильтр по типу показателя"
// @Param start_date query string false "Начало периода YYYY-MM-DD"
// @Param end_date query string false "Конец периода YYYY-MM-DD"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.VitalResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/vitals [get]
// @Security BearerAuth
func (h *VitalHandler) ListVitals(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	filter := model.VitalFilter{
		VitalType: r.URL.Query().Get("vital_type"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	vitals, err := h.VitalService.ListVitals(r.Context(), claims.UserUUID, filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, vitals)
}

// GetTrends godoc
// @Summary Показатели для графиков
// @Description Возвращает показатели, сгруппированные по типу, внутри группы —
// по дате по возрастанию. Числовые значения отдаются числами
// @Tags Vitals
// @Produce json
// @Param start_date query string false "Начало периода YYYY-MM-DD"
// @Param end_date query string false "Конец периода YYYY-MM-DD"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} map[string][]requestresponse.TrendPoint
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/vitals/trends [get]
// @Security BearerAuth
func (h *VitalHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	trends, err := h.VitalService.GetTrends(
		r.Context(),
		claims.UserUUID,
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, trends)
}

// UpdateVital godoc
// @Summary Обновление показателя
// @Description Частично обновляет показатель владельца; пустые поля не меняются
// @Tags Vitals
// @Accept json
// @Produce json
// @Param vital_id path string true "UUID показателя"
// @Param body body requestresponse.UpdateVitalRequest true "Изменяемые поля"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Показатель не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/vitals/{vital_id} [put]
// @Security BearerAuth
func (h *VitalHandler) UpdateVital(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	vitalUUID := chi.URLParam(r, "vital_id")
	if vitalUUID == "" {
		util.HandleError(w, "ID показателя обязателен", http.StatusBadRequest)
		return
	}

	var req requestresponse.UpdateVitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.VitalService.UpdateVital(r.Context(), vitalUUID, claims.UserUUID, &req); err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.SuccessResponse{
		Message: "показатель обновлён",
	})
}

// DeleteVital godoc
// @Summary Удаление показателя
// @Description Удаляет показатель владельца; отчёты, к которым он был привязан, не трогаются
// @Tags Vitals
// @Produce json
// @Param vital_id path string true "UUID показателя"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Показатель не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/vitals/{vital_id} [delete]
// @Security BearerAuth
func (h *VitalHandler) DeleteVital(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	vitalUUID := chi.URLParam(r, "vital_id")
	if vitalUUID == "" {
		util.HandleError(w, "ID показателя обязателен", http.StatusBadRequest)
		return
	}

	if err := h.VitalService.DeleteVital(r.Context(), vitalUUID, claims.UserUUID); err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.SuccessResponse{
		Message: "показатель удалён",
	})
}
