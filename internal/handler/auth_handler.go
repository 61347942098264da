package handler

import (
	"encoding/json"
	"net/http"

	"health-wallet/internal/model/requestresponse"
	"health-wallet/internal/ports"
	"health-wallet/internal/security"
	"health-wallet/internal/util"
)

type AuthHandler struct {
	ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService}
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя и сразу возвращает access токен
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Имя, email и пароль"
// @Success 201 {object} requestresponse.AuthResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный формат запроса"
// @Failure 409 {object} requestresponse.ErrorResponse "Email уже зарегистрирован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	token, user, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.AuthResponse{
		Message: "пользователь зарегистрирован",
		Token:   token,
		User: requestresponse.UserData{
			UUID:  user.UUID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Login godoc
// @Summary Вход пользователя
// @Description Проверяет email и пароль, возвращает access токен
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Email и пароль"
// @Success 200 {object} requestresponse.AuthResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный email или пароль"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	token, user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.AuthResponse{
		Token: token,
		User: requestresponse.UserData{
			UUID:  user.UUID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// CurrentUser godoc
// @Summary Текущий пользователь
// @Description Возвращает идентификатор пользователя из токена
// @Tags Auth
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Router /api/auth/me [get]
// @Security BearerAuth
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.CurrentUserResponse{
		UserUUID: claims.UserUUID,
	})
}

// Health godoc
// @Summary Проверка работоспособности
// @Tags Health
// @Produce json
// @Success 200 {object} requestresponse.HealthResponse
// @Router /api/health [get]
func (h *AuthHandler) Health(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, requestresponse.HealthResponse{
		Status:  "OK",
		Message: "Health Wallet API запущен",
	})
}
