package repository

import (
	"context"
	"database/sql"
	"errors"

	"health-wallet/config"
	"health-wallet/internal/model"
	"health-wallet/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// код ошибки Postgres unique_violation
const pgUniqueViolation = "23505"

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// Create : сохраняет нового пользователя; повторный email — ErrConflict
func (r *UserRepository) Create(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (uuid, email, password_hash, name)
		VALUES ($1, $2, $3, $4)
		RETURNING uuid, email, password_hash, name, role, created_at
	`

	createdUser := &model.User{}
	err := exec.QueryRowxContext(ctx, query, user.UUID, user.Email, user.PasswordHash, user.Name).
		StructScan(createdUser)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		return nil, model.ErrConflict
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки пользователя в БД", err)
	}

	return createdUser, nil
}

// FindByEmail : ищет пользователя по email (регистрозависимо, как хранится)
func (r *UserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	query := `SELECT uuid, email, password_hash, name, role, created_at FROM users WHERE email = $1`

	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	query := `SELECT uuid, email, password_hash, name, role, created_at FROM users WHERE uuid = $1`

	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя", err)
	}
	return &user, nil
}
