package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
}
