package constvars

const (
	MongoCollectionBusinesses    = "businesses"
	MongoCollectionMemberships   = "business_members"
	MongoCollectionAccessLogs    = "admin_access_logs"
	MongoCollectionUsers         = "users"
	MongoCollectionProducts      = "products"
	MongoCollectionPromotions    = "promotions"
	MongoCollectionOrders        = "orders"
	MongoCollectionPaymentEvents = "payment_events"
)

const (
	RedisKeyMenuFormat          = "menu:%s"
	RedisKeySessionFormat       = "session:%s"
	RedisKeyPaymentEventFormat  = "payment_event:%s"
	RedisKeyOrderExpiryLeader   = "order_expiry:leader"
	RedisKeyOrderQuotaFormat    = "order_quota:%s:%s:%d"
	RabbitMQOrderEventsExchange = "orders"
)

const (
	ProductImageAllowedPrefix = "image/"
	ProductImageObjectFormat  = "%s/products/%s%s"
)

const (
	PaymentEventIdempotencyTTLInHours = 24
)
