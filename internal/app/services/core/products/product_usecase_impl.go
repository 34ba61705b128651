package products

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/app/services/core/promotions"
	"pidelocal-service/internal/app/services/shared/clock"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/dto/responses"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type productUsecase struct {
	TenantUsecase       contracts.TenantUsecase
	ProductRepository   contracts.ProductRepository
	PromotionRepository contracts.PromotionRepository
	RedisRepository     contracts.RedisRepository
	Storage             contracts.Storage
	InternalConfig      *config.InternalConfig
	Clock               clock.Clock
	Log                 *zap.Logger
}

var (
	productUsecaseInstance contracts.ProductUsecase
	onceProductUsecase     sync.Once
)

func NewProductUsecase(
	tenantUsecase contracts.TenantUsecase,
	productRepository contracts.ProductRepository,
	promotionRepository contracts.PromotionRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	clk clock.Clock,
	logger *zap.Logger,
) contracts.ProductUsecase {
	onceProductUsecase.Do(func() {
		productUsecaseInstance = &productUsecase{
			TenantUsecase:       tenantUsecase,
			ProductRepository:   productRepository,
			PromotionRepository: promotionRepository,
			RedisRepository:     redisRepository,
			Storage:             storage,
			InternalConfig:      internalConfig,
			Clock:               clk,
			Log:                 logger,
		}
	})
	return productUsecaseInstance
}

func (uc *productUsecase) GetMenu(ctx context.Context, slug string) (*responses.Menu, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.GetMenu called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
	)

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	cacheKey := menuCacheKey(slug)
	cached := new(responses.Menu)
	found, err := uc.RedisRepository.GetInto(ctx, cacheKey, cached)
	if err != nil {
		uc.Log.Warn("productUsecase.GetMenu error reading menu cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
	if found {
		return cached, nil
	}

	products, err := uc.ProductRepository.ListByBusiness(ctx, business.ID, true)
	if err != nil {
		uc.Log.Error("productUsecase.GetMenu error calling ProductRepository.ListByBusiness",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	activePromotions, err := uc.PromotionRepository.ListByBusiness(ctx, business.ID, true)
	if err != nil {
		uc.Log.Error("productUsecase.GetMenu error calling PromotionRepository.ListByBusiness",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	menu := &responses.Menu{
		Categories: uc.groupByCategory(ctx, products),
		Promotions: make([]responses.Promotion, 0),
	}
	now := uc.Clock.Now()
	for i := range activePromotions {
		if activePromotions[i].Code != "" || promotions.IsAvailable(&activePromotions[i], now) != nil {
			continue
		}
		menu.Promotions = append(menu.Promotions, activePromotions[i].ConvertToPromotionResponse())
	}

	ttl := time.Duration(uc.InternalConfig.App.MenuCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, menu, ttl); err != nil {
		uc.Log.Warn("productUsecase.GetMenu error writing menu cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}

	uc.Log.Info("productUsecase.GetMenu succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProductCountKey, len(products)),
	)
	return menu, nil
}

func (uc *productUsecase) ListProducts(ctx context.Context, slug string) ([]responses.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := uc.ProductRepository.ListByBusiness(ctx, business.ID, false)
	if err != nil {
		uc.Log.Error("productUsecase.ListProducts error calling ProductRepository.ListByBusiness",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Product, len(products))
	for i := range products {
		response[i] = products[i].ConvertToProductResponse(uc.imageURL(ctx, &products[i]))
	}
	return response, nil
}

func (uc *productUsecase) CreateProduct(ctx context.Context, slug string, request *requests.UpsertProduct) (*responses.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.CreateProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
	)

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:         uuid.NewString(),
		BusinessID: business.ID,
	}
	applyProductRequest(product, request)
	product.SetCreatedAtUpdatedAt()

	err = uc.ProductRepository.Create(ctx, product)
	if err != nil {
		uc.Log.Error("productUsecase.CreateProduct error calling ProductRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.InvalidateMenu(ctx, slug)

	uc.Log.Info("productUsecase.CreateProduct succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, product.ID),
	)
	response := product.ConvertToProductResponse("")
	return &response, nil
}

func (uc *productUsecase) UpdateProduct(ctx context.Context, slug, productID string, request *requests.UpsertProduct) (*responses.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.UpdateProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, productID),
	)

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	product, err := uc.findProduct(ctx, business.ID, productID)
	if err != nil {
		return nil, err
	}

	applyProductRequest(product, request)
	product.SetUpdatedAt()

	err = uc.ProductRepository.Update(ctx, product)
	if err != nil {
		uc.Log.Error("productUsecase.UpdateProduct error calling ProductRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.InvalidateMenu(ctx, slug)

	uc.Log.Info("productUsecase.UpdateProduct succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, product.ID),
	)
	response := product.ConvertToProductResponse(uc.imageURL(ctx, product))
	return &response, nil
}

func (uc *productUsecase) DeleteProduct(ctx context.Context, slug, productID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return err
	}

	deleted, err := uc.ProductRepository.SoftDelete(ctx, business.ID, productID)
	if err != nil {
		uc.Log.Error("productUsecase.DeleteProduct error calling ProductRepository.SoftDelete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrProductNotFound(nil)
	}
	uc.InvalidateMenu(ctx, slug)

	uc.Log.Info("productUsecase.DeleteProduct succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, productID),
	)
	return nil
}

func (uc *productUsecase) UploadProductImage(ctx context.Context, slug string, request *requests.UploadProductImage) (*responses.UploadProductImage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.UploadProductImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, request.ProductID),
	)

	maxSize := uc.InternalConfig.Minio.ProductImageMaxUploadSizeInMB * 1024 * 1024
	if int64(len(request.Data)) > maxSize || request.Size > maxSize {
		return nil, exceptions.ErrImageTooLarge(nil)
	}
	contentType := http.DetectContentType(request.Data)
	if len(request.Data) == 0 || !strings.HasPrefix(contentType, constvars.ProductImageAllowedPrefix) {
		return nil, exceptions.ErrInvalidImage(fmt.Errorf("detected content type %s", contentType))
	}

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	product, err := uc.findProduct(ctx, business.ID, request.ProductID)
	if err != nil {
		return nil, err
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateObjectName(constvars.ProductImageObjectFormat, business.Slug, request.FileName)
	_, err = uc.Storage.UploadObject(ctx, bucketName, objectName, bytes.NewReader(request.Data), int64(len(request.Data)), contentType)
	if err != nil {
		uc.Log.Error("productUsecase.UploadProductImage error calling Storage.UploadObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.ProductRepository.SetImageObject(ctx, business.ID, product.ID, objectName)
	if err != nil {
		uc.Log.Error("productUsecase.UploadProductImage error calling ProductRepository.SetImageObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	previousObject := product.ImageObject
	product.ImageObject = objectName
	uc.InvalidateMenu(ctx, slug)

	if previousObject != "" && previousObject != objectName {
		if err := uc.Storage.RemoveObject(ctx, bucketName, previousObject); err != nil {
			uc.Log.Warn("productUsecase.UploadProductImage error removing previous image",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectNameKey, previousObject),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("productUsecase.UploadProductImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.UploadProductImage{
		ProductID:  product.ID,
		ObjectName: objectName,
		ImageURL:   uc.imageURL(ctx, product),
	}, nil
}

func (uc *productUsecase) InvalidateMenu(ctx context.Context, slug string) {
	if err := uc.RedisRepository.Delete(ctx, menuCacheKey(slug)); err != nil {
		uc.Log.Warn("productUsecase.InvalidateMenu error deleting menu cache",
			zap.String(constvars.LoggingTenantSlugKey, slug),
			zap.Error(err),
		)
	}
}

func (uc *productUsecase) findProduct(ctx context.Context, businessID, productID string) (*models.Product, error) {
	product, err := uc.ProductRepository.FindByID(ctx, businessID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, exceptions.ErrProductNotFound(nil)
	}
	return product, nil
}

// groupByCategory keeps the repository order, categories appear in the order
// of their first product.
func (uc *productUsecase) groupByCategory(ctx context.Context, products []models.Product) []responses.MenuCategory {
	categories := make([]responses.MenuCategory, 0)
	index := make(map[string]int)
	for i := range products {
		position, ok := index[products[i].Category]
		if !ok {
			position = len(categories)
			index[products[i].Category] = position
			categories = append(categories, responses.MenuCategory{Name: products[i].Category})
		}
		categories[position].Products = append(categories[position].Products,
			products[i].ConvertToProductResponse(uc.imageURL(ctx, &products[i])))
	}
	return categories
}

func (uc *productUsecase) imageURL(ctx context.Context, product *models.Product) string {
	if product.ImageObject == "" {
		return ""
	}
	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, product.ImageObject, expiry)
	if err != nil {
		uc.Log.Warn("productUsecase error presigning product image",
			zap.String(constvars.LoggingProductIDKey, product.ID),
			zap.String(constvars.LoggingObjectNameKey, product.ImageObject),
			zap.Error(err),
		)
		return ""
	}
	return url
}

func applyProductRequest(product *models.Product, request *requests.UpsertProduct) {
	product.Name = request.Name
	product.Description = request.Description
	product.Category = request.Category
	product.PriceCents = request.PriceCents
	product.Active = request.Active
	product.SortOrder = request.SortOrder
	product.Allergens = request.Allergens
}

func menuCacheKey(slug string) string {
	return fmt.Sprintf(constvars.RedisKeyMenuFormat, slug)
}
