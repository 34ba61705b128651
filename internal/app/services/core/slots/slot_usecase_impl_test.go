package slots

import (
	"context"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/app/services/shared/clock"
	"pidelocal-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) FindBySlug(ctx context.Context, slug string) (*models.Business, error) {
	args := m.Called(ctx, slug)
	business, _ := args.Get(0).(*models.Business)
	return business, args.Error(1)
}

func (m *MockBusinessRepository) List(ctx context.Context, page, pageSize int) ([]models.Business, int, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]models.Business), args.Int(1), args.Error(2)
}

func (m *MockBusinessRepository) Create(ctx context.Context, business *models.Business) error {
	return m.Called(ctx, business).Error(0)
}

func (m *MockBusinessRepository) UpdateOpeningHours(ctx context.Context, businessID string, openingHours map[string][]models.OpeningPeriod) error {
	return m.Called(ctx, businessID, openingHours).Error(0)
}

func (m *MockBusinessRepository) UpdateSlotSettings(ctx context.Context, businessID string, settings models.SlotSettings, timezone string) error {
	return m.Called(ctx, businessID, settings, timezone).Error(0)
}

func (m *MockBusinessRepository) UpdatePaymentSettings(ctx context.Context, businessID string, settings models.PaymentSettings) error {
	return m.Called(ctx, businessID, settings).Error(0)
}

func testBusiness() *models.Business {
	return &models.Business{
		ID:       "biz-1",
		Slug:     "pizza",
		Name:     "Pizza Sol",
		Timezone: "Europe/Madrid",
		OpeningHours: map[string][]models.OpeningPeriod{
			"1": {{Open: "12:00", Close: "16:00"}, {Open: "20:00", Close: "23:00"}},
		},
	}
}

func newTestSlotUsecase(repo *MockBusinessRepository, now time.Time) *slotUsecase {
	return &slotUsecase{
		BusinessRepository: repo,
		InternalConfig: &config.InternalConfig{
			App: config.App{Timezone: "Europe/Madrid"},
			Slots: config.Slots{
				DefaultSlotMinutes:        5,
				DefaultPrepMinutes:        20,
				DefaultCloseBufferMinutes: 10,
				MaxAdvanceDays:            14,
			},
		},
		Clock: clock.NewFixed(now),
		Log:   zap.NewNop(),
	}
}

func TestSlotUsecase_GetSlots(t *testing.T) {
	loc := madrid(t)
	now := time.Date(2025, 3, 17, 11, 50, 0, 0, loc)
	ctx := context.Background()

	t.Run("Uses Defaults When Settings Missing", func(t *testing.T) {
		repo := new(MockBusinessRepository)
		repo.On("FindBySlug", ctx, "pizza").Return(testBusiness(), nil)

		result, err := newTestSlotUsecase(repo, now).GetSlots(ctx, "pizza", "2025-03-17")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-17", result.Date)
		assert.Equal(t, "12:10", result.Slots[0])
		assert.Equal(t, "22:50", result.Slots[len(result.Slots)-1])
	})

	t.Run("Uses Business Settings", func(t *testing.T) {
		business := testBusiness()
		business.SlotSettings = models.SlotSettings{SlotMinutes: 30, PrepMinutes: 0, CloseBufferMinutes: 0}
		repo := new(MockBusinessRepository)
		repo.On("FindBySlug", ctx, "pizza").Return(business, nil)

		result, err := newTestSlotUsecase(repo, now).GetSlots(ctx, "pizza", "2025-03-24")
		require.NoError(t, err)
		assert.Equal(t, "12:00", result.Slots[0])
		assert.Contains(t, result.Slots, "16:00")
		assert.Equal(t, "23:00", result.Slots[len(result.Slots)-1])
	})

	t.Run("Past Date Has No Slots", func(t *testing.T) {
		repo := new(MockBusinessRepository)
		repo.On("FindBySlug", ctx, "pizza").Return(testBusiness(), nil)

		result, err := newTestSlotUsecase(repo, now).GetSlots(ctx, "pizza", "2025-03-10")
		require.NoError(t, err)
		assert.Empty(t, result.Slots)
	})

	t.Run("Beyond Booking Window Has No Slots", func(t *testing.T) {
		repo := new(MockBusinessRepository)
		repo.On("FindBySlug", ctx, "pizza").Return(testBusiness(), nil)

		result, err := newTestSlotUsecase(repo, now).GetSlots(ctx, "pizza", "2025-04-07")
		require.NoError(t, err)
		assert.Empty(t, result.Slots)
	})

	t.Run("Unknown Tenant", func(t *testing.T) {
		repo := new(MockBusinessRepository)
		repo.On("FindBySlug", ctx, "nope").Return(nil, nil)

		_, err := newTestSlotUsecase(repo, now).GetSlots(ctx, "nope", "2025-03-17")
		require.Error(t, err)
		assert.Equal(t, 404, exceptions.StatusCode(err))
	})

	t.Run("Stored Schedule Invalid", func(t *testing.T) {
		business := testBusiness()
		business.OpeningHours["2"] = []models.OpeningPeriod{{Open: "12:00", Close: "16:00"}, {Open: "15:00", Close: "18:00"}}
		repo := new(MockBusinessRepository)
		repo.On("FindBySlug", ctx, "pizza").Return(business, nil)

		_, err := newTestSlotUsecase(repo, now).GetSlots(ctx, "pizza", "2025-03-17")
		assert.Error(t, err)
	})
}

func TestSlotUsecase_IsValidSlot(t *testing.T) {
	loc := madrid(t)
	uc := newTestSlotUsecase(new(MockBusinessRepository), time.Date(2025, 3, 17, 11, 50, 0, 0, loc))
	ctx := context.Background()
	business := testBusiness()

	assert.True(t, uc.IsValidSlot(ctx, business, "2025-03-17", "12:10"))
	assert.False(t, uc.IsValidSlot(ctx, business, "2025-03-17", "12:05"))
	assert.False(t, uc.IsValidSlot(ctx, business, "2025-03-10", "12:10"))
	assert.True(t, uc.IsValidSlot(ctx, business, "2025-03-24", "12:00"))
	assert.False(t, uc.IsValidSlot(ctx, business, "bad", "12:00"))
}
