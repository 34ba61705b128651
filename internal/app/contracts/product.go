package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/dto/responses"
)

type ProductRepository interface {
	ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.Product, error)
	FindByID(ctx context.Context, businessID, productID string) (*models.Product, error)
	FindByIDs(ctx context.Context, businessID string, productIDs []string) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	SoftDelete(ctx context.Context, businessID, productID string) (bool, error)
	SetImageObject(ctx context.Context, businessID, productID, objectName string) error
}

type ProductUsecase interface {
	GetMenu(ctx context.Context, slug string) (*responses.Menu, error)
	ListProducts(ctx context.Context, slug string) ([]responses.Product, error)
	CreateProduct(ctx context.Context, slug string, request *requests.UpsertProduct) (*responses.Product, error)
	UpdateProduct(ctx context.Context, slug, productID string, request *requests.UpsertProduct) (*responses.Product, error)
	DeleteProduct(ctx context.Context, slug, productID string) error
	UploadProductImage(ctx context.Context, slug string, request *requests.UploadProductImage) (*responses.UploadProductImage, error)
	InvalidateMenu(ctx context.Context, slug string)
}
