package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"health-wallet/config"
	"health-wallet/internal/model"
	"health-wallet/internal/ports"
	"health-wallet/internal/security"
	"health-wallet/internal/util"

	"github.com/google/uuid"
)

type AuthService struct {
	db             *config.Database
	userRepository ports.UserRepository
	jwtService     ports.JWTServiceInterface
}

func NewAuthService(
	db *config.Database,
	userRepository ports.UserRepository,
	jwtService ports.JWTServiceInterface,
) *AuthService {
	return &AuthService{
		db:             db,
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Register : регистрирует пользователя и сразу выдаёт access-токен.
// Повторная регистрация email завершается конфликтом
func (s *AuthService) Register(ctx context.Context, name string, email string, password string) (string, *model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" || email == "" || password == "" {
		return "", nil, fmt.Errorf("[AuthService] имя, email и пароль обязательны: %w", model.ErrValidation)
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return "", nil, util.LogError("[AuthService] ошибка хэширования пароля", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         "owner",
	}

	created, err := s.userRepository.Create(ctx, s.db, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return "", nil, fmt.Errorf("[AuthService] пользователь с таким email уже существует: %w", model.ErrConflict)
		}
		return "", nil, util.LogError("[AuthService] не удалось создать пользователя", err)
	}

	token, err := s.jwtService.GenerateAccessToken(created.UUID)
	if err != nil {
		return "", nil, util.LogError("[AuthService] ошибка генерации токена", err)
	}

	log.Printf("[AuthService] пользователь %s успешно зарегистрирован", created.UUID)
	return token, created, nil
}

// Login : проверяет учётные данные и выдаёт access-токен. Неизвестный email
// и неверный пароль дают один и тот же ответ
func (s *AuthService) Login(ctx context.Context, email string, password string) (string, *model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if email == "" || password == "" {
		return "", nil, fmt.Errorf("[AuthService] email и пароль обязательны: %w", model.ErrValidation)
	}

	user, err := s.userRepository.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", nil, fmt.Errorf("[AuthService] неверный email или пароль: %w", model.ErrUnauthorized)
		}
		return "", nil, util.LogError("[AuthService] ошибка поиска пользователя", err)
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return "", nil, fmt.Errorf("[AuthService] неверный email или пароль: %w", model.ErrUnauthorized)
	}

	token, err := s.jwtService.GenerateAccessToken(user.UUID)
	if err != nil {
		return "", nil, util.LogError("[AuthService] ошибка генерации токена", err)
	}

	log.Printf("[AuthService] пользователь %s успешно вошёл", user.UUID)
	return token, user, nil
}
