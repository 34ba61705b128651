package promotions

import (
	"errors"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/constvars"
	"time"
)

var (
	ErrPromotionInactive     = errors.New("promotion is not active")
	ErrPromotionNotStarted   = errors.New("promotion has not started yet")
	ErrPromotionEnded        = errors.New("promotion has ended")
	ErrPromotionBelowMinimum = errors.New("order subtotal below promotion minimum")
	ErrPromotionUnknownType  = errors.New("unknown promotion type")
)

// IsAvailable reports whether the promotion is switched on and inside its
// validity window at now. StartsAt is inclusive, EndsAt exclusive.
func IsAvailable(promotion *models.Promotion, now time.Time) error {
	if !promotion.Active {
		return ErrPromotionInactive
	}
	if promotion.StartsAt != nil && now.Before(*promotion.StartsAt) {
		return ErrPromotionNotStarted
	}
	if promotion.EndsAt != nil && !now.Before(*promotion.EndsAt) {
		return ErrPromotionEnded
	}
	return nil
}

// Discount computes the amount taken off subtotalCents. The result never
// exceeds the subtotal.
func Discount(promotion *models.Promotion, subtotalCents int64, now time.Time) (int64, error) {
	if err := IsAvailable(promotion, now); err != nil {
		return 0, err
	}
	if subtotalCents < promotion.MinSubtotalCents {
		return 0, ErrPromotionBelowMinimum
	}

	var discount int64
	switch promotion.Type {
	case constvars.PromotionTypePercent:
		discount = subtotalCents * promotion.Value / 100
	case constvars.PromotionTypeFixed:
		discount = promotion.Value
	default:
		return 0, ErrPromotionUnknownType
	}

	if discount > subtotalCents {
		discount = subtotalCents
	}
	if discount < 0 {
		discount = 0
	}
	return discount, nil
}

// BestAutomatic picks the code-less promotion giving the largest discount.
// It returns nil when none applies.
func BestAutomatic(promotions []models.Promotion, subtotalCents int64, now time.Time) (*models.Promotion, int64) {
	var (
		best         *models.Promotion
		bestDiscount int64
	)
	for i := range promotions {
		if promotions[i].Code != "" {
			continue
		}
		discount, err := Discount(&promotions[i], subtotalCents, now)
		if err != nil || discount <= bestDiscount {
			continue
		}
		best = &promotions[i]
		bestDiscount = discount
	}
	return best, bestDiscount
}

func toUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
