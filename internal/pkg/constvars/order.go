package constvars

const (
	OrderStatusPending         = "pending"
	OrderStatusAwaitingPayment = "awaiting_payment"
	OrderStatusPaid            = "paid"
	OrderStatusConfirmed       = "confirmed"
	OrderStatusPreparing       = "preparing"
	OrderStatusReady           = "ready"
	OrderStatusCompleted       = "completed"
	OrderStatusCancelled       = "cancelled"
)

const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

const (
	PaymentStatusNotRequired = "not_required"
	PaymentStatusPending     = "pending"
	PaymentStatusPaid        = "paid"
	PaymentStatusFailed      = "failed"
)

const (
	PromotionTypePercent = "percent"
	PromotionTypeFixed   = "fixed"
)

const (
	PaymentEventCheckoutCompleted = "checkout.session.completed"
	PaymentEventCheckoutExpired   = "checkout.session.expired"
	PaymentEventPaymentFailed     = "payment_intent.payment_failed"
)

const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
	OrderEventPaid          = "order.paid"
)

const (
	DefaultCurrency = "eur"
)

const (
	OrderChangedByCustomer       = "customer"
	OrderChangedByPaymentGateway = "payment_gateway"
	OrderChangedBySystem         = "system"
	OrderExpiryBatchSize         = 100
)

const (
	PaymentWebhookOutcomeProcessed        = "processed"
	PaymentWebhookOutcomeDuplicate        = "duplicate"
	PaymentWebhookOutcomeIgnored          = "ignored"
	PaymentWebhookOutcomeInvalidSignature = "invalid_signature"
	PaymentWebhookOutcomeOrderNotFound    = "order_not_found"
	PaymentWebhookOutcomeFailed           = "failed"
)
