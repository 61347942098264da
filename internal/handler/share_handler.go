package handler

import (
	"encoding/json"
	"net/http"

	"health-wallet/internal/model/requestresponse"
	"health-wallet/internal/ports"
	"health-wallet/internal/security"
	"health-wallet/internal/util"

	"github.com/go-chi/chi/v5"
)

type ShareHandler struct {
	ports.ShareService
}

func NewShareHandler(shareService ports.ShareService) *ShareHandler {
	return &ShareHandler{shareService}
}

// ShareReport godoc
// @Summary Предоставление доступа к отчёту
// @Description Выдаёт пользователю с указанным email доступ на чтение отчёта.
// Повторный запрос для той же пары отчёт-получатель обновляет существующий грант
// @Tags Share
// @Accept json
// @Produce json
// @Param report_id path string true "UUID отчёта"
// @Param body body requestresponse.ShareRequest true "Email получателя и тип доступа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ShareResponse "Существующий грант обновлён"
// @Success 201 {object} requestresponse.ShareResponse "Грант создан"
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный формат запроса или попытка поделиться с собой"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Отчёт или получатель не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/share/report/{report_id} [post]
// @Security BearerAuth
func (h *ShareHandler) ShareReport(w http.ResponseWriter, r *http.Request) {
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

	var req requestresponse.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	sharedWith, created, err := h.ShareService.GrantAccess(r.Context(), claims.UserUUID, reportUUID, req.SharedWithEmail, req.AccessType)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	status := http.StatusOK
	message := "доступ к отчёту обновлён"
	if created {
		status = http.StatusCreated
		message = "доступ к отчёту предоставлен"
	}

	util.WriteJSON(w, status, requestresponse.ShareResponse{
		Message:    message,
		SharedWith: *sharedWith,
	})
}

// ListGrants godoc
// @Summary Список грантов отчёта
// @Description Возвращает пользователей, которым выдан доступ к отчёту. Доступно только владельцу
// @Tags Share
// @Produce json
// @Param report_id path string true "UUID отчёта"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.GrantEntry
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Отчёт не найден или недоступен"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/share/report/{report_id} [get]
// @Security BearerAuth
func (h *ShareHandler) ListGrants(w http.ResponseWriter, r *http.Request) {
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

	grants, err := h.ShareService.ListGrants(r.Context(), claims.UserUUID, reportUUID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, grants)
}

// SharedWithMe godoc
// @Summary Отчёты, доступные пользователю
// @Description Возвращает отчёты, которыми поделились с текущим пользователем
// @Tags Share
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SharedWithMeResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/share/shared-with-me [get]
// @Security BearerAuth
func (h *ShareHandler) SharedWithMe(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	reports, err := h.ShareService.ListSharedWithMe(r.Context(), claims.UserUUID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.SharedWithMeResponse{Reports: reports})
}

// SharedByMe godoc
// @Summary Гранты, выданные пользователем
// @Description Возвращает список грантов, выданных текущим пользователем, с данными отчётов и получателей
// @Tags Share
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SharedByMeResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/share/shared-by-me [get]
// @Security BearerAuth
func (h *ShareHandler) SharedByMe(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	shares, err := h.ShareService.ListSharedByMe(r.Context(), claims.UserUUID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.SharedByMeResponse{Shares: shares})
}

// RevokeAccess godoc
// @Summary Отзыв доступа к отчёту
// @Description Убирает доступ пользователя к отчёту. Доступно только владельцу;
// отзыв несуществующего гранта возвращает 404
// @Tags Share
// @Produce json
// @Param report_id path string true "UUID отчёта"
// @Param user_id path string true "UUID пользователя, у которого отзывается доступ"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Отчёт или грант не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/share/report/{report_id}/user/{user_id} [delete]
// @Security BearerAuth
func (h *ShareHandler) RevokeAccess(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	reportUUID := chi.URLParam(r, "report_id")
	sharedWithUUID := chi.URLParam(r, "user_id")
	if reportUUID == "" || sharedWithUUID == "" {
		util.HandleError(w, "ID отчёта и пользователя обязательны", http.StatusBadRequest)
		return
	}

	if err := h.ShareService.RevokeAccess(r.Context(), claims.UserUUID, reportUUID, sharedWithUUID); err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.SuccessResponse{
		Message: "доступ отозван",
	})
}
