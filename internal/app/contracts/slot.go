package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/dto/responses"
)

type SlotUsecase interface {
	GetSlots(ctx context.Context, slug, date string) (*responses.Slots, error)
	IsValidSlot(ctx context.Context, business *models.Business, date, pickupTime string) bool
}
