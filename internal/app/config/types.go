package config

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Database
		Redis          *redis.Client
		Logger         *zap.Logger
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		InternalConfig *InternalConfig
		DriverConfig   *DriverConfig
		// WorkerStop if set will be called during Shutdown to stop background workers
		WorkerStop func()
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	InternalConfig struct {
		App            App
		JWT            JWT
		Access         Access
		Slots          Slots
		PaymentGateway PaymentGateway
		Minio          AppMinio
		RabbitMQ       AppRabbitMQ
		Metrics        Metrics
	}

	App struct {
		Env                         string
		Port                        string
		Version                     string
		Address                     string
		BaseUrl                     string
		Timezone                    string
		FrontendDomain              string
		EndpointPrefix              string
		MaxRequests                 int
		MaxTimeRequestsPerSeconds   int
		LoginMaxRequests            int
		ShutdownTimeoutInSeconds    int
		RequestBodyLimitInMegabyte  int
		PaymentExpiredTimeInMinutes int
		OrderExpiryCronSpec         string
		OrderExpiryLockTTL          time.Duration
		MenuCacheTTLInMinutes       int
		OrderMaxPerCustomer         int
		OrderRateWindowInSeconds    int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Access struct {
		// AdminEmails is the raw super admin allow-list, separated by ',' ';' or newlines
		AdminEmails                     string
		LookupTimeoutInMilliseconds     int
		SideEffectTimeoutInMilliseconds int
	}

	Slots struct {
		DefaultSlotMinutes        int
		DefaultPrepMinutes        int
		DefaultCloseBufferMinutes int
		MaxAdvanceDays            int
	}

	PaymentGateway struct {
		BaseUrl                     string
		ApiKey                      string
		WebhookSecret               string
		SuccessUrl                  string
		CancelUrl                   string
		RequestTimeoutInSeconds     int
		RateLimitPerSecond          int
		SignatureToleranceInSeconds int
	}

	AppMinio struct {
		BucketName                          string
		ProductImageMaxUploadSizeInMB       int64
		PreSignedUrlObjectExpiryTimeInHours int
	}

	AppRabbitMQ struct {
		// Enabled false publishes order events nowhere
		Enabled             bool
		OrderEventsExchange string
	}

	Metrics struct {
		Enabled bool
		Path    string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host                 string
		Port                 string
		Password             string
		DB                   int
		PoolSize             int
		DialTimeoutInSeconds int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Port               string
		Host               string
		Username           string
		Password           string
		VHost              string
		HeartbeatInSeconds int
		ConnectionName     string
	}

	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
