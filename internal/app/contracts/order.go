package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/dto/responses"
	"time"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, businessID, orderID string) (*models.Order, error)
	FindByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, int, error)
	// UpdateStatus only applies when the stored status still equals change.From.
	UpdateStatus(ctx context.Context, orderID string, change models.OrderStatusChange, paymentStatus string) (bool, error)
	SetCheckoutSession(ctx context.Context, orderID, checkoutSessionID string) error
	FindAwaitingPaymentBefore(ctx context.Context, before time.Time, limit int) ([]models.Order, error)
}

type OrderUsecase interface {
	CreateOrder(ctx context.Context, slug string, request *requests.CreateOrder) (*responses.CreateOrder, error)
	GetOrder(ctx context.Context, slug, orderID string) (*responses.Order, error)
	ListOrders(ctx context.Context, slug string, request *requests.ListOrders) ([]responses.Order, *responses.Pagination, error)
	UpdateOrderStatus(ctx context.Context, slug, orderID, changedBy string, request *requests.UpdateOrderStatus) (*responses.Order, error)
	ApplyPaymentResult(ctx context.Context, orderID string, paid bool) error
	ExpireUnpaidOrders(ctx context.Context) (int, error)
}
