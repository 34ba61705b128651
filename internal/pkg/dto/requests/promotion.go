package requests

import "time"

type UpsertPromotion struct {
	Name             string     `json:"name" validate:"required,max=120"`
	Code             string     `json:"code" validate:"omitempty,max=40"`
	Type             string     `json:"type" validate:"required,oneof=percent fixed"`
	Value            int64      `json:"value" validate:"gt=0"`
	MinSubtotalCents int64      `json:"min_subtotal_cents" validate:"gte=0"`
	Active           bool       `json:"active"`
	StartsAt         *time.Time `json:"starts_at"`
	EndsAt           *time.Time `json:"ends_at"`
}
