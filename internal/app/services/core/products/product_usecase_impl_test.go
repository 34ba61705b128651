package products

import (
	"context"
	"errors"
	"io"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/app/services/shared/clock"
	"pidelocal-service/internal/app/services/shared/redis"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/dto/responses"
	"pidelocal-service/internal/pkg/exceptions"
	"strings"
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

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.Product, error) {
	args := m.Called(ctx, businessID, activeOnly)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, businessID, productID string) (*models.Product, error) {
	args := m.Called(ctx, businessID, productID)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, businessID string, productIDs []string) ([]models.Product, error) {
	args := m.Called(ctx, businessID, productIDs)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) SoftDelete(ctx context.Context, businessID, productID string) (bool, error) {
	args := m.Called(ctx, businessID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) SetImageObject(ctx context.Context, businessID, productID, objectName string) error {
	return m.Called(ctx, businessID, productID, objectName).Error(0)
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

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, bucketName, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	return m.Called(ctx, bucketName, objectName).Error(0)
}

type productMocks struct {
	tenants    *MockTenantUsecase
	products   *MockProductRepository
	promotions *MockPromotionRepository
	storage    *MockStorage
	redis      *miniredis.Miniredis
}

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestProductUsecase(t *testing.T) (*productUsecase, productMocks) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	mocks := productMocks{
		tenants:    new(MockTenantUsecase),
		products:   new(MockProductRepository),
		promotions: new(MockPromotionRepository),
		storage:    new(MockStorage),
		redis:      mr,
	}
	uc := &productUsecase{
		TenantUsecase:       mocks.tenants,
		ProductRepository:   mocks.products,
		PromotionRepository: mocks.promotions,
		RedisRepository:     redis.NewRedisRepository(client),
		Storage:             mocks.storage,
		InternalConfig: &config.InternalConfig{
			App: config.App{MenuCacheTTLInMinutes: 10},
			Minio: config.AppMinio{
				BucketName:                          "pidelocal",
				ProductImageMaxUploadSizeInMB:       1,
				PreSignedUrlObjectExpiryTimeInHours: 24,
			},
		},
		Clock: clock.NewFixed(time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)),
		Log:   zap.NewNop(),
	}
	return uc, mocks
}

func TestProductUsecase_GetMenu(t *testing.T) {
	ctx := context.Background()
	uc, mocks := newTestProductUsecase(t)
	ended := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mocks.tenants.On("GetBusiness", ctx, "pizza").Return(&models.Business{ID: "biz-1", Slug: "pizza"}, nil)
	mocks.products.On("ListByBusiness", ctx, "biz-1", true).Return([]models.Product{
		{ID: "p-1", Name: "Margarita", Category: "Pizzas", PriceCents: 900, Active: true},
		{ID: "p-2", Name: "Agua", Category: "Bebidas", PriceCents: 150, Active: true, ImageObject: "pizza/products/agua.png"},
		{ID: "p-3", Name: "Barbacoa", Category: "Pizzas", PriceCents: 1100, Active: true},
	}, nil).Once()
	mocks.promotions.On("ListByBusiness", ctx, "biz-1", true).Return([]models.Promotion{
		{ID: "auto", Name: "Martes", Type: "percent", Value: 10, Active: true},
		{ID: "coded", Name: "Secret", Code: "VIP", Type: "fixed", Value: 200, Active: true},
		{ID: "old", Name: "Old", Type: "fixed", Value: 100, Active: true, EndsAt: &ended},
	}, nil).Once()
	mocks.storage.On("GetObjectUrlWithExpiryTime", ctx, "pidelocal", "pizza/products/agua.png", 24*time.Hour).
		Return("https://cdn.example/agua.png", nil)

	menu, err := uc.GetMenu(ctx, "pizza")
	require.NoError(t, err)
	require.Len(t, menu.Categories, 2)
	assert.Equal(t, "Pizzas", menu.Categories[0].Name)
	assert.Len(t, menu.Categories[0].Products, 2)
	assert.Equal(t, "Bebidas", menu.Categories[1].Name)
	assert.Equal(t, "https://cdn.example/agua.png", menu.Categories[1].Products[0].ImageURL)
	require.Len(t, menu.Promotions, 1)
	assert.Equal(t, "auto", menu.Promotions[0].ID)
	assert.True(t, mocks.redis.Exists("menu:pizza"))

	cached, err := uc.GetMenu(ctx, "pizza")
	require.NoError(t, err)
	assert.Equal(t, menu, cached)
	mocks.products.AssertNumberOfCalls(t, "ListByBusiness", 1)

	uc.InvalidateMenu(ctx, "pizza")
	assert.False(t, mocks.redis.Exists("menu:pizza"))
}

func TestProductUsecase_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	uc, mocks := newTestProductUsecase(t)
	mocks.tenants.On("GetBusiness", ctx, "pizza").Return(&models.Business{ID: "biz-1", Slug: "pizza"}, nil)
	mocks.products.On("SoftDelete", ctx, "biz-1", "p-1").Return(true, nil)
	mocks.products.On("SoftDelete", ctx, "biz-1", "gone").Return(false, nil)
	require.NoError(t, mocks.redis.Set("menu:pizza", "{}"))

	require.NoError(t, uc.DeleteProduct(ctx, "pizza", "p-1"))
	assert.False(t, mocks.redis.Exists("menu:pizza"))

	err := uc.DeleteProduct(ctx, "pizza", "gone")
	require.Error(t, err)
	assert.Equal(t, 404, exceptions.StatusCode(err))
}

func TestProductUsecase_UploadProductImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Not An Image", func(t *testing.T) {
		uc, _ := newTestProductUsecase(t)
		_, err := uc.UploadProductImage(ctx, "pizza", &requests.UploadProductImage{
			ProductID: "p-1",
			FileName:  "menu.pdf",
			Data:      []byte("%PDF-1.4 not an image"),
		})
		require.Error(t, err)
		assert.Equal(t, 415, exceptions.StatusCode(err))
	})

	t.Run("Too Large", func(t *testing.T) {
		uc, _ := newTestProductUsecase(t)
		data := append(append([]byte{}, pngHeader...), make([]byte, 1024*1024)...)
		_, err := uc.UploadProductImage(ctx, "pizza", &requests.UploadProductImage{
			ProductID: "p-1",
			FileName:  "big.png",
			Data:      data,
		})
		require.Error(t, err)
		assert.Equal(t, 413, exceptions.StatusCode(err))
	})

	t.Run("Uploaded", func(t *testing.T) {
		uc, mocks := newTestProductUsecase(t)
		mocks.tenants.On("GetBusiness", ctx, "pizza").Return(&models.Business{ID: "biz-1", Slug: "pizza"}, nil)
		mocks.products.On("FindByID", ctx, "biz-1", "p-1").Return(&models.Product{ID: "p-1", BusinessID: "biz-1"}, nil)
		objectName := mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "pizza/products/") && strings.HasSuffix(name, ".png")
		})
		mocks.storage.On("UploadObject", ctx, "pidelocal", objectName, mock.Anything, int64(len(pngHeader)), "image/png").
			Return("ignored", nil)
		mocks.products.On("SetImageObject", ctx, "biz-1", "p-1", objectName).Return(nil)
		mocks.storage.On("GetObjectUrlWithExpiryTime", ctx, "pidelocal", objectName, 24*time.Hour).
			Return("https://cdn.example/p-1.png", nil)

		result, err := uc.UploadProductImage(ctx, "pizza", &requests.UploadProductImage{
			ProductID:   "p-1",
			FileName:    "Margarita.PNG",
			ContentType: "image/png",
			Size:        int64(len(pngHeader)),
			Data:        pngHeader,
		})
		require.NoError(t, err)
		assert.Equal(t, "p-1", result.ProductID)
		assert.Equal(t, "https://cdn.example/p-1.png", result.ImageURL)
		mocks.storage.AssertExpectations(t)
	})

	t.Run("Replaces Previous Image", func(t *testing.T) {
		uc, mocks := newTestProductUsecase(t)
		mocks.tenants.On("GetBusiness", ctx, "pizza").Return(&models.Business{ID: "biz-1", Slug: "pizza"}, nil)
		mocks.products.On("FindByID", ctx, "biz-1", "p-1").
			Return(&models.Product{ID: "p-1", BusinessID: "biz-1", ImageObject: "pizza/products/old.png"}, nil)
		mocks.storage.On("UploadObject", ctx, "pidelocal", mock.Anything, mock.Anything, mock.Anything, "image/png").
			Return("ignored", nil)
		mocks.products.On("SetImageObject", ctx, "biz-1", "p-1", mock.Anything).Return(nil)
		mocks.storage.On("RemoveObject", ctx, "pidelocal", "pizza/products/old.png").
			Return(errors.New("bucket unreachable"))
		mocks.storage.On("GetObjectUrlWithExpiryTime", ctx, "pidelocal", mock.Anything, 24*time.Hour).
			Return("https://cdn.example/new.png", nil)

		result, err := uc.UploadProductImage(ctx, "pizza", &requests.UploadProductImage{
			ProductID: "p-1",
			FileName:  "new.png",
			Data:      pngHeader,
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/new.png", result.ImageURL)
		mocks.storage.AssertCalled(t, "RemoveObject", ctx, "pidelocal", "pizza/products/old.png")
	})
}
