package config

import (
	"pidelocal-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "pidelocal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:                 utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:                 utils.GetEnvString("REDIS_PORT", "6379"),
			Password:             utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:                   utils.GetEnvInt("REDIS_DB", 0),
			PoolSize:             utils.GetEnvInt("REDIS_POOL_SIZE", 20),
			DialTimeoutInSeconds: utils.GetEnvInt("REDIS_DIAL_TIMEOUT_IN_SECONDS", 5),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", ""),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:               utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:               utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username:           utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password:           utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VHost:              utils.GetEnvString("RABBITMQ_VHOST", "/"),
			HeartbeatInSeconds: utils.GetEnvInt("RABBITMQ_HEARTBEAT_IN_SECONDS", 10),
			ConnectionName:     utils.GetEnvString("RABBITMQ_CONNECTION_NAME", "pidelocal-service"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                         utils.GetEnvString("APP_ENV", "development"),
			Port:                        utils.GetEnvString("APP_PORT", "8080"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1"),
			Address:                     utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			BaseUrl:                     utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			Timezone:                    utils.GetEnvString("APP_TIMEZONE", "Europe/Madrid"),
			FrontendDomain:              utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			EndpointPrefix:              utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			MaxTimeRequestsPerSeconds:   utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			LoginMaxRequests:            utils.GetEnvInt("APP_LOGIN_MAX_REQUESTS", 10),
			ShutdownTimeoutInSeconds:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte:  utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			PaymentExpiredTimeInMinutes: utils.GetEnvInt("APP_PAYMENT_EXPIRED_TIME_IN_MINUTES", 30),
			OrderExpiryCronSpec:         utils.GetEnvString("APP_ORDER_EXPIRY_CRON_SPEC", "@every 1m"),
			OrderExpiryLockTTL:          utils.GetEnvDuration("APP_ORDER_EXPIRY_LOCK_TTL", 2*time.Minute),
			MenuCacheTTLInMinutes:       utils.GetEnvInt("APP_MENU_CACHE_TTL_IN_MINUTES", 10),
			OrderMaxPerCustomer:         utils.GetEnvInt("APP_ORDER_MAX_PER_CUSTOMER", 5),
			OrderRateWindowInSeconds:    utils.GetEnvInt("APP_ORDER_RATE_WINDOW_IN_SECONDS", 600),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "pidelocal-dev-secret"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		Access: Access{
			AdminEmails:                     utils.GetEnvString("ACCESS_ADMIN_EMAILS", ""),
			LookupTimeoutInMilliseconds:     utils.GetEnvInt("ACCESS_LOOKUP_TIMEOUT_IN_MILLISECONDS", 1500),
			SideEffectTimeoutInMilliseconds: utils.GetEnvInt("ACCESS_SIDE_EFFECT_TIMEOUT_IN_MILLISECONDS", 3000),
		},
		Slots: Slots{
			DefaultSlotMinutes:        utils.GetEnvInt("SLOT_DEFAULT_SLOT_MINUTES", 5),
			DefaultPrepMinutes:        utils.GetEnvInt("SLOT_DEFAULT_PREP_MINUTES", 20),
			DefaultCloseBufferMinutes: utils.GetEnvInt("SLOT_DEFAULT_CLOSE_BUFFER_MINUTES", 10),
			MaxAdvanceDays:            utils.GetEnvInt("SLOT_MAX_ADVANCE_DAYS", 14),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:                     utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "http://localhost:12111"),
			ApiKey:                      utils.GetEnvString("PAYMENT_GATEWAY_API_KEY", ""),
			WebhookSecret:               utils.GetEnvString("PAYMENT_GATEWAY_WEBHOOK_SECRET", ""),
			SuccessUrl:                  utils.GetEnvString("PAYMENT_GATEWAY_SUCCESS_URL", "http://localhost:3000/pedido/%s?ok=1"),
			CancelUrl:                   utils.GetEnvString("PAYMENT_GATEWAY_CANCEL_URL", "http://localhost:3000/pedido/%s?cancelado=1"),
			RequestTimeoutInSeconds:     utils.GetEnvInt("PAYMENT_GATEWAY_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RateLimitPerSecond:          utils.GetEnvInt("PAYMENT_GATEWAY_RATE_LIMIT_PER_SECOND", 20),
			SignatureToleranceInSeconds: utils.GetEnvInt("PAYMENT_GATEWAY_SIGNATURE_TOLERANCE_IN_SECONDS", 300),
		},
		Minio: AppMinio{
			BucketName:                          utils.GetEnvString("MINIO_BUCKET_NAME", "pidelocal"),
			ProductImageMaxUploadSizeInMB:       utils.GetEnvInt64("MINIO_PRODUCT_IMAGE_MAX_UPLOAD_SIZE_IN_MB", 2),
			PreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			Enabled:             utils.GetEnvBool("RABBITMQ_ENABLED", false),
			OrderEventsExchange: utils.GetEnvString("RABBITMQ_ORDER_EVENTS_EXCHANGE", "orders"),
		},
		Metrics: Metrics{
			Enabled: utils.GetEnvBool("METRICS_ENABLED", true),
			Path:    utils.GetEnvString("METRICS_PATH", "/metrics"),
		},
	}
}
