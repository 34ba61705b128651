package promotions

import (
	"context"
	"errors"
	"fmt"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/dto/responses"
	"pidelocal-service/internal/pkg/exceptions"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type promotionUsecase struct {
	TenantUsecase       contracts.TenantUsecase
	PromotionRepository contracts.PromotionRepository
	RedisRepository     contracts.RedisRepository
	Log                 *zap.Logger
}

var (
	promotionUsecaseInstance contracts.PromotionUsecase
	oncePromotionUsecase     sync.Once
)

func NewPromotionUsecase(
	tenantUsecase contracts.TenantUsecase,
	promotionRepository contracts.PromotionRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.PromotionUsecase {
	oncePromotionUsecase.Do(func() {
		promotionUsecaseInstance = &promotionUsecase{
			TenantUsecase:       tenantUsecase,
			PromotionRepository: promotionRepository,
			RedisRepository:     redisRepository,
			Log:                 logger,
		}
	})
	return promotionUsecaseInstance
}

func (uc *promotionUsecase) ListPromotions(ctx context.Context, slug string) ([]responses.Promotion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	promotions, err := uc.PromotionRepository.ListByBusiness(ctx, business.ID, false)
	if err != nil {
		uc.Log.Error("promotionUsecase.ListPromotions error calling PromotionRepository.ListByBusiness",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Promotion, len(promotions))
	for i, eachPromotion := range promotions {
		response[i] = eachPromotion.ConvertToPromotionResponse()
	}
	return response, nil
}

func (uc *promotionUsecase) CreatePromotion(ctx context.Context, slug string, request *requests.UpsertPromotion) (*responses.Promotion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("promotionUsecase.CreatePromotion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
	)

	if err := validatePromotion(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureCodeUnused(ctx, business.ID, "", request.Code); err != nil {
		return nil, err
	}

	promotion := &models.Promotion{
		ID:         uuid.NewString(),
		BusinessID: business.ID,
	}
	applyPromotionRequest(promotion, request)
	promotion.SetCreatedAtUpdatedAt()

	err = uc.PromotionRepository.Create(ctx, promotion)
	if err != nil {
		uc.Log.Error("promotionUsecase.CreatePromotion error calling PromotionRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidateMenu(ctx, slug)

	uc.Log.Info("promotionUsecase.CreatePromotion succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPromotionIDKey, promotion.ID),
	)
	response := promotion.ConvertToPromotionResponse()
	return &response, nil
}

func (uc *promotionUsecase) UpdatePromotion(ctx context.Context, slug, promotionID string, request *requests.UpsertPromotion) (*responses.Promotion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("promotionUsecase.UpdatePromotion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPromotionIDKey, promotionID),
	)

	if err := validatePromotion(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	promotion, err := uc.PromotionRepository.FindByID(ctx, business.ID, promotionID)
	if err != nil {
		uc.Log.Error("promotionUsecase.UpdatePromotion error calling PromotionRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if promotion == nil {
		return nil, exceptions.ErrPromotionNotFound(nil)
	}
	if err := uc.ensureCodeUnused(ctx, business.ID, promotion.ID, request.Code); err != nil {
		return nil, err
	}

	applyPromotionRequest(promotion, request)
	promotion.SetUpdatedAt()

	err = uc.PromotionRepository.Update(ctx, promotion)
	if err != nil {
		uc.Log.Error("promotionUsecase.UpdatePromotion error calling PromotionRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidateMenu(ctx, slug)

	uc.Log.Info("promotionUsecase.UpdatePromotion succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPromotionIDKey, promotion.ID),
	)
	response := promotion.ConvertToPromotionResponse()
	return &response, nil
}

func (uc *promotionUsecase) DeletePromotion(ctx context.Context, slug, promotionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return err
	}

	deleted, err := uc.PromotionRepository.Delete(ctx, business.ID, promotionID)
	if err != nil {
		uc.Log.Error("promotionUsecase.DeletePromotion error calling PromotionRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrPromotionNotFound(nil)
	}
	uc.invalidateMenu(ctx, slug)

	uc.Log.Info("promotionUsecase.DeletePromotion succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPromotionIDKey, promotionID),
	)
	return nil
}

func (uc *promotionUsecase) ensureCodeUnused(ctx context.Context, businessID, promotionID, code string) error {
	if code == "" {
		return nil
	}
	existing, err := uc.PromotionRepository.FindByCode(ctx, businessID, code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != promotionID {
		return exceptions.ErrInputValidation(fmt.Errorf("promotion code %s already used", code))
	}
	return nil
}

func (uc *promotionUsecase) invalidateMenu(ctx context.Context, slug string) {
	if err := uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeyMenuFormat, slug)); err != nil {
		uc.Log.Warn("promotionUsecase error invalidating menu cache",
			zap.String(constvars.LoggingTenantSlugKey, slug),
			zap.Error(err),
		)
	}
}

func validatePromotion(request *requests.UpsertPromotion) error {
	if request.Type == constvars.PromotionTypePercent && request.Value > 100 {
		return errors.New("percent promotion value must be at most 100")
	}
	if request.StartsAt != nil && request.EndsAt != nil && !request.EndsAt.After(*request.StartsAt) {
		return errors.New("promotion must end after it starts")
	}
	return nil
}

func applyPromotionRequest(promotion *models.Promotion, request *requests.UpsertPromotion) {
	promotion.Name = request.Name
	promotion.Code = request.Code
	promotion.Type = request.Type
	promotion.Value = request.Value
	promotion.MinSubtotalCents = request.MinSubtotalCents
	promotion.Active = request.Active
	promotion.StartsAt = toUTC(request.StartsAt)
	promotion.EndsAt = toUTC(request.EndsAt)
}
