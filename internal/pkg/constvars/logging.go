package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"

	LoggingTenantSlugKey    = "tenant_slug"
	LoggingBusinessIDKey    = "business_id"
	LoggingUserIDKey        = "user_id"
	LoggingEmailKey         = "email"
	LoggingIsSuperAdminKey  = "is_super_admin"
	LoggingAllowedKey       = "allowed"
	LoggingProductIDKey     = "product_id"
	LoggingProductCountKey  = "product_count"
	LoggingPromotionIDKey   = "promotion_id"
	LoggingOrderIDKey       = "order_id"
	LoggingOrderStatusKey   = "order_status"
	LoggingOrderCountKey    = "order_count"
	LoggingPickupDateKey    = "pickup_date"
	LoggingPickupTimeKey    = "pickup_time"
	LoggingSlotCountKey     = "slot_count"
	LoggingPaymentEventKey  = "payment_event"
	LoggingPaymentEventID   = "payment_event_id"
	LoggingCheckoutIDKey    = "checkout_id"
	LoggingRedisKey         = "redis_key"
	LoggingLockValueKey     = "lock_value"
	LoggingRoutingKey       = "routing_key"
	LoggingObjectNameKey    = "object_name"
	LoggingBusinessCountKey = "business_count"

	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingRetryAfterKey         = "retry_after"
	LoggingCronSpecKey           = "cron_spec"
	LoggingExpiredCountKey       = "expired_count"
	LoggingPanicKey              = "panic"
)
