package slots

import (
	"context"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/app/services/shared/clock"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/dto/responses"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type slotUsecase struct {
	BusinessRepository contracts.BusinessRepository
	InternalConfig     *config.InternalConfig
	Clock              clock.Clock
	Log                *zap.Logger
}

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

func NewSlotUsecase(
	businessRepository contracts.BusinessRepository,
	internalConfig *config.InternalConfig,
	clk clock.Clock,
	logger *zap.Logger,
) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			BusinessRepository: businessRepository,
			InternalConfig:     internalConfig,
			Clock:              clk,
			Log:                logger,
		}
	})
	return slotUsecaseInstance
}

func (uc *slotUsecase) GetSlots(ctx context.Context, slug, date string) (*responses.Slots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.GetSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
		zap.String(constvars.LoggingPickupDateKey, date),
	)

	business, err := uc.BusinessRepository.FindBySlug(ctx, slug)
	if err != nil {
		uc.Log.Error("slotUsecase.GetSlots error calling BusinessRepository.FindBySlug",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if business == nil {
		return nil, exceptions.ErrTenantNotFound(nil, slug)
	}

	cfg, err := ConfigForBusiness(business, uc.InternalConfig.Slots, uc.InternalConfig.App.Timezone, uc.Clock.Now())
	if err != nil {
		uc.Log.Error("slotUsecase.GetSlots stored schedule is invalid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBusinessIDKey, business.ID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidSchedule(err)
	}

	day, err := utils.ParseISODate(date, cfg.Options.Location)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result := &responses.Slots{Date: date, Slots: []string{}}
	if WithinBookingWindow(day, cfg.Options, uc.InternalConfig.Slots.MaxAdvanceDays) {
		result.Slots = Generate(day, cfg.Schedule, cfg.Options)
	}

	uc.Log.Info("slotUsecase.GetSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
		zap.Int(constvars.LoggingSlotCountKey, len(result.Slots)),
	)
	return result, nil
}

func (uc *slotUsecase) IsValidSlot(ctx context.Context, business *models.Business, date, pickupTime string) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cfg, err := ConfigForBusiness(business, uc.InternalConfig.Slots, uc.InternalConfig.App.Timezone, uc.Clock.Now())
	if err != nil {
		uc.Log.Warn("slotUsecase.IsValidSlot stored schedule is invalid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBusinessIDKey, business.ID),
			zap.Error(err),
		)
		return false
	}

	day, err := utils.ParseISODate(date, cfg.Options.Location)
	if err != nil || !WithinBookingWindow(day, cfg.Options, uc.InternalConfig.Slots.MaxAdvanceDays) {
		return false
	}

	return IsValidSlot(date, pickupTime, cfg)
}
