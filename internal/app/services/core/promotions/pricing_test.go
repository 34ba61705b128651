package promotions

import (
	"pidelocal-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscount(t *testing.T) {
	now := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name      string
		promotion models.Promotion
		subtotal  int64
		expected  int64
		err       error
	}{
		{
			name:      "Percent",
			promotion: models.Promotion{Type: "percent", Value: 10, Active: true},
			subtotal:  2550,
			expected:  255,
		},
		{
			name:      "Percent Rounds Down",
			promotion: models.Promotion{Type: "percent", Value: 15, Active: true},
			subtotal:  999,
			expected:  149,
		},
		{
			name:      "Fixed",
			promotion: models.Promotion{Type: "fixed", Value: 300, Active: true},
			subtotal:  2000,
			expected:  300,
		},
		{
			name:      "Fixed Capped At Subtotal",
			promotion: models.Promotion{Type: "fixed", Value: 5000, Active: true},
			subtotal:  1200,
			expected:  1200,
		},
		{
			name:      "Percent Above Hundred Capped",
			promotion: models.Promotion{Type: "percent", Value: 150, Active: true},
			subtotal:  1000,
			expected:  1000,
		},
		{
			name:      "Inactive",
			promotion: models.Promotion{Type: "fixed", Value: 300},
			subtotal:  2000,
			err:       ErrPromotionInactive,
		},
		{
			name:      "Below Minimum",
			promotion: models.Promotion{Type: "fixed", Value: 300, Active: true, MinSubtotalCents: 2500},
			subtotal:  2000,
			err:       ErrPromotionBelowMinimum,
		},
		{
			name:      "Not Started",
			promotion: models.Promotion{Type: "fixed", Value: 300, Active: true, StartsAt: &tomorrow},
			subtotal:  2000,
			err:       ErrPromotionNotStarted,
		},
		{
			name:      "Ended",
			promotion: models.Promotion{Type: "fixed", Value: 300, Active: true, EndsAt: &yesterday},
			subtotal:  2000,
			err:       ErrPromotionEnded,
		},
		{
			name:      "Ends Exactly Now",
			promotion: models.Promotion{Type: "fixed", Value: 300, Active: true, EndsAt: &now},
			subtotal:  2000,
			err:       ErrPromotionEnded,
		},
		{
			name:      "Starts Exactly Now",
			promotion: models.Promotion{Type: "fixed", Value: 300, Active: true, StartsAt: &now, EndsAt: &tomorrow},
			subtotal:  2000,
			expected:  300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, err := Discount(&tt.promotion, tt.subtotal, now)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, discount)
		})
	}
}

func TestBestAutomatic(t *testing.T) {
	now := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)
	promotions := []models.Promotion{
		{ID: "coded", Code: "BIG", Type: "percent", Value: 50, Active: true},
		{ID: "small", Type: "fixed", Value: 100, Active: true},
		{ID: "better", Type: "percent", Value: 10, Active: true},
		{ID: "minimum", Type: "fixed", Value: 900, Active: true, MinSubtotalCents: 5000},
	}

	best, discount := BestAutomatic(promotions, 2000, now)
	if assert.NotNil(t, best) {
		assert.Equal(t, "better", best.ID)
	}
	assert.Equal(t, int64(200), discount)

	best, discount = BestAutomatic(promotions[:1], 2000, now)
	assert.Nil(t, best)
	assert.Zero(t, discount)
}
