package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, slug string, request *requests.AdminLogin) (*responses.AdminLogin, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, token string) (*models.Session, error)
	Me(ctx context.Context, session *models.Session, slug string) (*responses.Me, error)
}
