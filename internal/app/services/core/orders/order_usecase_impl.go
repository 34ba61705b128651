package orders

import (
	"context"
	"fmt"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/app/services/core/promotions"
	"pidelocal-service/internal/app/services/shared/clock"
	"pidelocal-service/internal/app/services/shared/metrics"
	"pidelocal-service/internal/app/services/shared/ratelimiter"
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

type orderUsecase struct {
	TenantUsecase         contracts.TenantUsecase
	SlotUsecase           contracts.SlotUsecase
	ProductRepository     contracts.ProductRepository
	PromotionRepository   contracts.PromotionRepository
	OrderRepository       contracts.OrderRepository
	PaymentGatewayService contracts.PaymentGatewayService
	EventPublisher        contracts.EventPublisher
	OrderLimiter          *ratelimiter.OrderLimiter
	InternalConfig        *config.InternalConfig
	Clock                 clock.Clock
	Log                   *zap.Logger
}

var (
	orderUsecaseInstance contracts.OrderUsecase
	onceOrderUsecase     sync.Once
)

func NewOrderUsecase(
	tenantUsecase contracts.TenantUsecase,
	slotUsecase contracts.SlotUsecase,
	productRepository contracts.ProductRepository,
	promotionRepository contracts.PromotionRepository,
	orderRepository contracts.OrderRepository,
	paymentGatewayService contracts.PaymentGatewayService,
	eventPublisher contracts.EventPublisher,
	orderLimiter *ratelimiter.OrderLimiter,
	internalConfig *config.InternalConfig,
	clk clock.Clock,
	logger *zap.Logger,
) contracts.OrderUsecase {
	onceOrderUsecase.Do(func() {
		orderUsecaseInstance = &orderUsecase{
			TenantUsecase:         tenantUsecase,
			SlotUsecase:           slotUsecase,
			ProductRepository:     productRepository,
			PromotionRepository:   promotionRepository,
			OrderRepository:       orderRepository,
			PaymentGatewayService: paymentGatewayService,
			EventPublisher:        eventPublisher,
			OrderLimiter:          orderLimiter,
			InternalConfig:        internalConfig,
			Clock:                 clk,
			Log:                   logger,
		}
	})
	return orderUsecaseInstance
}

func (uc *orderUsecase) CreateOrder(ctx context.Context, slug string, request *requests.CreateOrder) (*responses.CreateOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
		zap.String(constvars.LoggingPickupDateKey, request.PickupDate),
		zap.String(constvars.LoggingPickupTimeKey, request.PickupTime),
	)

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	if request.PaymentMethod == constvars.PaymentMethodCard && !cardPaymentsEnabled(business) {
		return nil, exceptions.ErrCardPaymentsDisabled(nil)
	}

	if !uc.SlotUsecase.IsValidSlot(ctx, business, request.PickupDate, request.PickupTime) {
		metrics.IncSlotRejected()
		uc.Log.Info("orderUsecase.CreateOrder rejected pickup slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPickupDateKey, request.PickupDate),
			zap.String(constvars.LoggingPickupTimeKey, request.PickupTime),
		)
		return nil, exceptions.ErrSlotNotAvailable(nil)
	}

	err = uc.applyCustomerLimit(ctx, slug, request.CustomerPhone)
	if err != nil {
		return nil, err
	}

	items, subtotal, err := uc.priceItems(ctx, business.ID, request.Items)
	if err != nil {
		return nil, err
	}

	now := uc.Clock.Now().UTC()
	promotion, discount, err := uc.resolvePromotion(ctx, business.ID, request.PromotionCode, subtotal, now)
	if err != nil {
		return nil, err
	}

	status := constvars.OrderStatusPending
	paymentStatus := constvars.PaymentStatusNotRequired
	if request.PaymentMethod == constvars.PaymentMethodCard {
		status = constvars.OrderStatusAwaitingPayment
		paymentStatus = constvars.PaymentStatusPending
	}

	order := &models.Order{
		ID:            uuid.NewString(),
		BusinessID:    business.ID,
		Number:        utils.GenerateOrderNumber(now),
		Status:        status,
		CustomerName:  request.CustomerName,
		CustomerPhone: request.CustomerPhone,
		CustomerEmail: request.CustomerEmail,
		Items:         items,
		PickupDate:    request.PickupDate,
		PickupTime:    request.PickupTime,
		PaymentMethod: request.PaymentMethod,
		PaymentStatus: paymentStatus,
		SubtotalCents: subtotal,
		DiscountCents: discount,
		TotalCents:    subtotal - discount,
		Currency:      business.Currency(),
		Notes:         request.Notes,
		StatusHistory: []models.OrderStatusChange{{
			To:        status,
			ChangedBy: constvars.OrderChangedByCustomer,
			ChangedAt: now,
		}},
	}
	if promotion != nil {
		order.PromotionID = promotion.ID
		order.PromotionCode = promotion.Code
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	err = uc.OrderRepository.Create(ctx, order)
	if err != nil {
		uc.Log.Error("orderUsecase.CreateOrder error calling OrderRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.CreateOrder{}
	if request.PaymentMethod == constvars.PaymentMethodCard {
		checkoutURL, err := uc.startCheckout(ctx, business, order, now)
		if err != nil {
			return nil, err
		}
		response.CheckoutURL = checkoutURL
	}

	metrics.IncOrderCreated(order.PaymentMethod)
	uc.publish(ctx, order.Event(constvars.OrderEventCreated, "", now))

	uc.Log.Info("orderUsecase.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
		zap.String(constvars.LoggingOrderStatusKey, order.Status),
	)
	response.Order = order.ConvertToOrderResponse()
	return response, nil
}

func (uc *orderUsecase) GetOrder(ctx context.Context, slug, orderID string) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.GetOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	order, err := uc.findOrder(ctx, business.ID, orderID)
	if err != nil {
		return nil, err
	}

	response := order.ConvertToOrderResponse()
	return &response, nil
}

func (uc *orderUsecase) ListOrders(ctx context.Context, slug string, request *requests.ListOrders) ([]responses.Order, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.ListOrders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
	)

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	orders, total, err := uc.OrderRepository.List(ctx, models.OrderFilter{
		BusinessID: business.ID,
		Status:     request.Status,
		PickupDate: request.PickupDate,
		Page:       request.Page,
		PageSize:   request.PageSize,
	})
	if err != nil {
		uc.Log.Error("orderUsecase.ListOrders error calling OrderRepository.List",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := make([]responses.Order, len(orders))
	for i := range orders {
		response[i] = orders[i].ConvertToOrderResponse()
	}
	app := uc.InternalConfig.App
	baseURL := fmt.Sprintf("%s/%s/%s%s", app.BaseUrl, app.EndpointPrefix, app.Version, constvars.ResourceAdminOrders)
	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, baseURL)

	uc.Log.Info("orderUsecase.ListOrders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOrderCountKey, len(response)),
	)
	return response, pagination, nil
}

func (uc *orderUsecase) UpdateOrderStatus(ctx context.Context, slug, orderID, changedBy string, request *requests.UpdateOrderStatus) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.UpdateOrderStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingOrderStatusKey, request.Status),
	)

	business, err := uc.TenantUsecase.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	order, err := uc.findOrder(ctx, business.ID, orderID)
	if err != nil {
		return nil, err
	}

	paymentStatus := ""
	if request.Status == constvars.OrderStatusPaid {
		paymentStatus = constvars.PaymentStatusPaid
	}
	err = uc.changeStatus(ctx, order, request.Status, changedBy, paymentStatus)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("orderUsecase.UpdateOrderStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
		zap.String(constvars.LoggingOrderStatusKey, order.Status),
	)
	response := order.ConvertToOrderResponse()
	return &response, nil
}

// ApplyPaymentResult moves a card order out of awaiting_payment. Orders that
// already left that status are left untouched.
func (uc *orderUsecase) ApplyPaymentResult(ctx context.Context, orderID string, paid bool) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.ApplyPaymentResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.Bool(constvars.LoggingSuccessKey, paid),
	)

	order, err := uc.OrderRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		uc.Log.Error("orderUsecase.ApplyPaymentResult error calling OrderRepository.FindByOrderID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if order == nil {
		return exceptions.ErrOrderNotFound(nil)
	}
	if order.Status != constvars.OrderStatusAwaitingPayment {
		uc.Log.Info("orderUsecase.ApplyPaymentResult order no longer awaiting payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, order.ID),
			zap.String(constvars.LoggingOrderStatusKey, order.Status),
		)
		return nil
	}

	if paid {
		return uc.changeStatus(ctx, order, constvars.OrderStatusPaid, constvars.OrderChangedByPaymentGateway, constvars.PaymentStatusPaid)
	}
	return uc.changeStatus(ctx, order, constvars.OrderStatusCancelled, constvars.OrderChangedByPaymentGateway, constvars.PaymentStatusFailed)
}

func (uc *orderUsecase) ExpireUnpaidOrders(ctx context.Context) (int, error) {
	ttl := time.Duration(uc.InternalConfig.App.PaymentExpiredTimeInMinutes) * time.Minute
	before := uc.Clock.Now().UTC().Add(-ttl)

	expired := 0
	for {
		orders, err := uc.OrderRepository.FindAwaitingPaymentBefore(ctx, before, constvars.OrderExpiryBatchSize)
		if err != nil {
			uc.Log.Error("orderUsecase.ExpireUnpaidOrders error calling OrderRepository.FindAwaitingPaymentBefore",
				zap.Error(err),
			)
			return expired, err
		}

		changed := 0
		for i := range orders {
			err := uc.changeStatus(ctx, &orders[i], constvars.OrderStatusCancelled, constvars.OrderChangedBySystem, constvars.PaymentStatusFailed)
			if err != nil {
				uc.Log.Warn("orderUsecase.ExpireUnpaidOrders could not cancel order",
					zap.String(constvars.LoggingOrderIDKey, orders[i].ID),
					zap.Error(err),
				)
				continue
			}
			changed++
		}
		expired += changed

		if len(orders) < constvars.OrderExpiryBatchSize || changed == 0 {
			break
		}
	}

	if expired > 0 {
		uc.Log.Info("orderUsecase.ExpireUnpaidOrders succeeded",
			zap.Int(constvars.LoggingExpiredCountKey, expired),
		)
	}
	return expired, nil
}

// changeStatus applies a validated transition and keeps order in sync with
// what was stored.
func (uc *orderUsecase) changeStatus(ctx context.Context, order *models.Order, to, changedBy, paymentStatus string) error {
	from := order.Status
	if !CanTransition(from, to) {
		return exceptions.ErrInvalidStatusTransition(nil, from, to)
	}

	now := uc.Clock.Now().UTC()
	change := models.OrderStatusChange{From: from, To: to, ChangedBy: changedBy, ChangedAt: now}
	updated, err := uc.OrderRepository.UpdateStatus(ctx, order.ID, change, paymentStatus)
	if err != nil {
		uc.Log.Error("orderUsecase.changeStatus error calling OrderRepository.UpdateStatus",
			zap.String(constvars.LoggingOrderIDKey, order.ID),
			zap.Error(err),
		)
		return err
	}
	if !updated {
		// someone else moved the order first
		return exceptions.ErrInvalidStatusTransition(nil, from, to)
	}

	order.Status = to
	order.UpdatedAt = now
	order.StatusHistory = append(order.StatusHistory, change)
	if paymentStatus != "" {
		order.PaymentStatus = paymentStatus
	}

	metrics.IncOrderStatusChanged(to)
	eventType := constvars.OrderEventStatusChanged
	if to == constvars.OrderStatusPaid {
		eventType = constvars.OrderEventPaid
	}
	uc.publish(ctx, order.Event(eventType, from, now))
	return nil
}

func (uc *orderUsecase) findOrder(ctx context.Context, businessID, orderID string) (*models.Order, error) {
	order, err := uc.OrderRepository.FindByID(ctx, businessID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(nil)
	}
	return order, nil
}

// applyCustomerLimit caps orders per customer phone. A limiter failure lets
// the order through.
func (uc *orderUsecase) applyCustomerLimit(ctx context.Context, slug, phone string) error {
	if uc.OrderLimiter == nil {
		return nil
	}

	quota := ratelimiter.Quota{
		Max:    uc.InternalConfig.App.OrderMaxPerCustomer,
		Window: time.Duration(uc.InternalConfig.App.OrderRateWindowInSeconds) * time.Second,
	}
	decision, err := uc.OrderLimiter.AllowOrder(ctx, slug, phone, quota, uc.Clock.Now().UTC())
	if err != nil {
		uc.Log.Warn("orderUsecase.applyCustomerLimit limiter unavailable",
			zap.String(constvars.LoggingTenantSlugKey, slug),
			zap.Error(err),
		)
		return nil
	}
	if !decision.Allowed {
		return exceptions.ErrTooManyRequests(fmt.Errorf("retry after %s", decision.RetryAfter))
	}
	return nil
}

// priceItems prices the requested lines from the catalogue. Repeated product
// ids are merged into one line.
func (uc *orderUsecase) priceItems(ctx context.Context, businessID string, requested []requests.CreateOrderItem) ([]models.OrderItem, int64, error) {
	quantities := make(map[string]int)
	productIDs := make([]string, 0, len(requested))
	for _, item := range requested {
		if _, seen := quantities[item.ProductID]; !seen {
			productIDs = append(productIDs, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	products, err := uc.ProductRepository.FindByIDs(ctx, businessID, productIDs)
	if err != nil {
		uc.Log.Error("orderUsecase.priceItems error calling ProductRepository.FindByIDs",
			zap.Error(err),
		)
		return nil, 0, err
	}
	catalogue := make(map[string]models.Product, len(products))
	for _, product := range products {
		catalogue[product.ID] = product
	}

	items := make([]models.OrderItem, 0, len(productIDs))
	var subtotal int64
	for _, productID := range productIDs {
		product, ok := catalogue[productID]
		if !ok || !product.Active {
			return nil, 0, exceptions.ErrProductUnavailable(fmt.Errorf("product %s", productID))
		}
		quantity := quantities[productID]
		lineTotal := product.PriceCents * int64(quantity)
		items = append(items, models.OrderItem{
			ProductID:      product.ID,
			Name:           product.Name,
			Quantity:       quantity,
			UnitPriceCents: product.PriceCents,
			LineTotalCents: lineTotal,
		})
		subtotal += lineTotal
	}
	return items, subtotal, nil
}

// resolvePromotion applies the coded promotion when a code is given, otherwise
// the best automatic one.
func (uc *orderUsecase) resolvePromotion(ctx context.Context, businessID, code string, subtotal int64, now time.Time) (*models.Promotion, int64, error) {
	code = strings.TrimSpace(code)
	if code != "" {
		promotion, err := uc.PromotionRepository.FindByCode(ctx, businessID, code)
		if err != nil {
			return nil, 0, err
		}
		if promotion == nil {
			return nil, 0, exceptions.ErrPromotionNotApplicable(fmt.Errorf("unknown code %s", code))
		}
		discount, err := promotions.Discount(promotion, subtotal, now)
		if err != nil {
			return nil, 0, exceptions.ErrPromotionNotApplicable(err)
		}
		return promotion, discount, nil
	}

	active, err := uc.PromotionRepository.ListByBusiness(ctx, businessID, true)
	if err != nil {
		return nil, 0, err
	}
	promotion, discount := promotions.BestAutomatic(active, subtotal, now)
	return promotion, discount, nil
}

func (uc *orderUsecase) startCheckout(ctx context.Context, business *models.Business, order *models.Order, now time.Time) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	gateway := uc.InternalConfig.PaymentGateway

	session, err := uc.PaymentGatewayService.CreateCheckoutSession(ctx, &models.CheckoutSessionRequest{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		AmountCents: order.TotalCents,
		Currency:    order.Currency,
		AccountID:   business.PaymentSettings.AccountID,
		SuccessURL:  fmt.Sprintf(gateway.SuccessUrl, order.ID),
		CancelURL:   fmt.Sprintf(gateway.CancelUrl, order.ID),
		ExpiresAt:   now.Add(time.Duration(uc.InternalConfig.App.PaymentExpiredTimeInMinutes) * time.Minute),
	})
	if err != nil {
		uc.Log.Error("orderUsecase.startCheckout error calling PaymentGatewayService.CreateCheckoutSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, order.ID),
			zap.Error(err),
		)
		if cancelErr := uc.changeStatus(ctx, order, constvars.OrderStatusCancelled, constvars.OrderChangedBySystem, constvars.PaymentStatusFailed); cancelErr != nil {
			uc.Log.Warn("orderUsecase.startCheckout could not cancel order",
				zap.String(constvars.LoggingOrderIDKey, order.ID),
				zap.Error(cancelErr),
			)
		}
		return "", err
	}

	err = uc.OrderRepository.SetCheckoutSession(ctx, order.ID, session.ID)
	if err != nil {
		uc.Log.Error("orderUsecase.startCheckout error calling OrderRepository.SetCheckoutSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}
	order.CheckoutSessionID = session.ID
	return session.URL, nil
}

func (uc *orderUsecase) publish(ctx context.Context, event *models.OrderEvent) {
	if uc.EventPublisher == nil {
		return
	}
	if err := uc.EventPublisher.PublishOrderEvent(ctx, event); err != nil {
		uc.Log.Warn("orderUsecase error publishing order event",
			zap.String(constvars.LoggingRoutingKey, event.Type),
			zap.String(constvars.LoggingOrderIDKey, event.OrderID),
			zap.Error(err),
		)
	}
}

func cardPaymentsEnabled(business *models.Business) bool {
	return business.PaymentSettings.Enabled && business.PaymentSettings.AccountID != ""
}
