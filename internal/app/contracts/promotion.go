package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/dto/responses"
)

type PromotionRepository interface {
	ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.Promotion, error)
	FindByID(ctx context.Context, businessID, promotionID string) (*models.Promotion, error)
	FindByCode(ctx context.Context, businessID, code string) (*models.Promotion, error)
	Create(ctx context.Context, promotion *models.Promotion) error
	Update(ctx context.Context, promotion *models.Promotion) error
	Delete(ctx context.Context, businessID, promotionID string) (bool, error)
}

type PromotionUsecase interface {
	ListPromotions(ctx context.Context, slug string) ([]responses.Promotion, error)
	CreatePromotion(ctx context.Context, slug string, request *requests.UpsertPromotion) (*responses.Promotion, error)
	UpdatePromotion(ctx context.Context, slug, promotionID string, request *requests.UpsertPromotion) (*responses.Promotion, error)
	DeletePromotion(ctx context.Context, slug, promotionID string) error
}
