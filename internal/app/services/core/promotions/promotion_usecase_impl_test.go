package promotions

import (
	"context"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/app/services/shared/redis"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/dto/responses"
	"pidelocal-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTenantUsecase struct {
	mock.Mock
}

func (m *MockTenantUsecase) GetBusiness(ctx context.Context, slug string) (*models.Business, error) {
	args := m.Called(ctx, slug)
	business, _ := args.Get(0).(*models.Business)
	return business, args.Error(1)
}

func (m *MockTenantUsecase) GetTenant(ctx context.Context, slug string) (*responses.Tenant, error) {
	panic("not used")
}

func (m *MockTenantUsecase) GetOpeningHours(ctx context.Context, slug string) (*responses.OpeningHours, error) {
	panic("not used")
}

func (m *MockTenantUsecase) UpdateOpeningHours(ctx context.Context, slug string, request *requests.UpdateOpeningHours) (*responses.OpeningHours, error) {
	panic("not used")
}

func (m *MockTenantUsecase) GetSlotSettings(ctx context.Context, slug string) (*responses.SlotSettings, error) {
	panic("not used")
}

func (m *MockTenantUsecase) UpdateSlotSettings(ctx context.Context, slug string, request *requests.UpdateSlotSettings) (*responses.SlotSettings, error) {
	panic("not used")
}

func (m *MockTenantUsecase) GetPaymentSettings(ctx context.Context, slug string) (*responses.PaymentSettings, error) {
	panic("not used")
}

func (m *MockTenantUsecase) UpdatePaymentSettings(ctx context.Context, slug string, request *requests.UpdatePaymentSettings) (*responses.PaymentSettings, error) {
	panic("not used")
}

func (m *MockTenantUsecase) ListBusinesses(ctx context.Context, request *requests.Pagination) ([]responses.Business, *responses.Pagination, error) {
	panic("not used")
}

func (m *MockTenantUsecase) CreateBusiness(ctx context.Context, request *requests.CreateBusiness) (*responses.Business, error) {
	panic("not used")
}

func (m *MockTenantUsecase) AddMember(ctx context.Context, slug string, request *requests.AddMember) (*responses.Member, error) {
	panic("not used")
}

type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.Promotion, error) {
	args := m.Called(ctx, businessID, activeOnly)
	return args.Get(0).([]models.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) FindByID(ctx context.Context, businessID, promotionID string) (*models.Promotion, error) {
	args := m.Called(ctx, businessID, promotionID)
	promotion, _ := args.Get(0).(*models.Promotion)
	return promotion, args.Error(1)
}

func (m *MockPromotionRepository) FindByCode(ctx context.Context, businessID, code string) (*models.Promotion, error) {
	args := m.Called(ctx, businessID, code)
	promotion, _ := args.Get(0).(*models.Promotion)
	return promotion, args.Error(1)
}

func (m *MockPromotionRepository) Create(ctx context.Context, promotion *models.Promotion) error {
	return m.Called(ctx, promotion).Error(0)
}

func (m *MockPromotionRepository) Update(ctx context.Context, promotion *models.Promotion) error {
	return m.Called(ctx, promotion).Error(0)
}

func (m *MockPromotionRepository) Delete(ctx context.Context, businessID, promotionID string) (bool, error) {
	args := m.Called(ctx, businessID, promotionID)
	return args.Bool(0), args.Error(1)
}

func newTestPromotionUsecase(t *testing.T) (*promotionUsecase, *MockTenantUsecase, *MockPromotionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	tenants := new(MockTenantUsecase)
	repo := new(MockPromotionRepository)
	uc := &promotionUsecase{
		TenantUsecase:       tenants,
		PromotionRepository: repo,
		RedisRepository:     redis.NewRedisRepository(client),
		Log:                 zap.NewNop(),
	}
	return uc, tenants, repo, mr
}

func TestPromotionUsecase_CreatePromotion(t *testing.T) {
	ctx := context.Background()
	business := &models.Business{ID: "biz-1", Slug: "pizza"}

	t.Run("Percent Above Hundred", func(t *testing.T) {
		uc, _, _, _ := newTestPromotionUsecase(t)
		_, err := uc.CreatePromotion(ctx, "pizza", &requests.UpsertPromotion{Name: "Half", Type: "percent", Value: 120})
		require.Error(t, err)
		assert.Equal(t, 400, exceptions.StatusCode(err))
	})

	t.Run("Ends Before Start", func(t *testing.T) {
		uc, _, _, _ := newTestPromotionUsecase(t)
		start := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
		end := start.Add(-time.Hour)
		_, err := uc.CreatePromotion(ctx, "pizza", &requests.UpsertPromotion{Name: "X", Type: "fixed", Value: 100, StartsAt: &start, EndsAt: &end})
		require.Error(t, err)
		assert.Equal(t, 400, exceptions.StatusCode(err))
	})

	t.Run("Duplicate Code", func(t *testing.T) {
		uc, tenants, repo, _ := newTestPromotionUsecase(t)
		tenants.On("GetBusiness", ctx, "pizza").Return(business, nil)
		repo.On("FindByCode", ctx, "biz-1", "SPRING").Return(&models.Promotion{ID: "p-0"}, nil)

		_, err := uc.CreatePromotion(ctx, "pizza", &requests.UpsertPromotion{Name: "Spring", Code: "SPRING", Type: "fixed", Value: 100})
		require.Error(t, err)
		assert.Equal(t, 400, exceptions.StatusCode(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Created And Menu Invalidated", func(t *testing.T) {
		uc, tenants, repo, mr := newTestPromotionUsecase(t)
		require.NoError(t, mr.Set("menu:pizza", `{"categories":[]}`))
		tenants.On("GetBusiness", ctx, "pizza").Return(business, nil)
		repo.On("FindByCode", ctx, "biz-1", "SPRING").Return(nil, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(p *models.Promotion) bool {
			return p.BusinessID == "biz-1" && p.Code == "SPRING" && p.ID != ""
		})).Return(nil)

		result, err := uc.CreatePromotion(ctx, "pizza", &requests.UpsertPromotion{Name: "Spring", Code: "SPRING", Type: "percent", Value: 10, Active: true})
		require.NoError(t, err)
		assert.Equal(t, "SPRING", result.Code)
		assert.False(t, mr.Exists("menu:pizza"))
	})
}

func TestPromotionUsecase_DeletePromotion(t *testing.T) {
	ctx := context.Background()
	uc, tenants, repo, _ := newTestPromotionUsecase(t)
	tenants.On("GetBusiness", ctx, "pizza").Return(&models.Business{ID: "biz-1", Slug: "pizza"}, nil)
	repo.On("Delete", ctx, "biz-1", "missing").Return(false, nil)

	err := uc.DeletePromotion(ctx, "pizza", "missing")
	require.Error(t, err)
	assert.Equal(t, 404, exceptions.StatusCode(err))
}
