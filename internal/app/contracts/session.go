package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, userID, email string) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
