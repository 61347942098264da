package ports

import (
	"context"

	"health-wallet/internal/model"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error)
	FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error)
}

type AuthService interface {
	Register(ctx context.Context, name string, email string, password string) (string, *model.User, error)
	Login(ctx context.Context, email string, password string) (string, *model.User, error)
}
