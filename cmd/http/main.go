package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/delivery/http/controllers"
	"pidelocal-service/internal/app/delivery/http/middlewares"
	"pidelocal-service/internal/app/delivery/http/routers"
	"pidelocal-service/internal/app/drivers/database"
	"pidelocal-service/internal/app/drivers/logger"
	"pidelocal-service/internal/app/drivers/messaging"
	"pidelocal-service/internal/app/drivers/storage"
	"pidelocal-service/internal/app/services/core/access"
	"pidelocal-service/internal/app/services/core/auth"
	"pidelocal-service/internal/app/services/core/orders"
	"pidelocal-service/internal/app/services/core/payments"
	"pidelocal-service/internal/app/services/core/products"
	"pidelocal-service/internal/app/services/core/promotions"
	"pidelocal-service/internal/app/services/core/slots"
	"pidelocal-service/internal/app/services/core/tenants"
	"pidelocal-service/internal/app/services/core/users"
	"pidelocal-service/internal/app/services/shared/clock"
	"pidelocal-service/internal/app/services/shared/locker"
	"pidelocal-service/internal/app/services/shared/metrics"
	paymentGateway "pidelocal-service/internal/app/services/shared/payment_gateway"
	"pidelocal-service/internal/app/services/shared/publisher"
	"pidelocal-service/internal/app/services/shared/ratelimiter"
	"pidelocal-service/internal/app/services/shared/redis"
	"pidelocal-service/internal/app/services/shared/session"
	minioStorage "pidelocal-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		Minio:          minioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.EnsureMongoIndexes(indexCtx, mongoDB)
	cancelIndex()
	if err != nil {
		log.Fatalf("Error creating mongo indexes: %v", err)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("address", server.Addr),
			zap.String("version", Version),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger
	systemClock := clock.NewSystem()

	metrics.Register()

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	orderLimiter := ratelimiter.NewOrderLimiter(redisRepository, log)
	sessionService := session.NewSessionService(redisRepository, log, time.Duration(internalConfig.JWT.ExpTimeInHour)*time.Hour)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)
	checkoutService := paymentGateway.NewCheckoutService(internalConfig, log)

	eventPublisher := publisher.NewNoopPublisher()
	if bootstrap.RabbitMQ != nil {
		rabbitMQPublisher, err := publisher.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.OrderEventsExchange, log)
		if err != nil {
			return err
		}
		eventPublisher = rabbitMQPublisher
	}

	// Repositories
	businessRepository := tenants.NewBusinessMongoRepository(bootstrap.MongoDB)
	membershipRepository := tenants.NewMembershipMongoRepository(bootstrap.MongoDB)
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	productRepository := products.NewProductMongoRepository(bootstrap.MongoDB)
	promotionRepository := promotions.NewPromotionMongoRepository(bootstrap.MongoDB)
	orderRepository := orders.NewOrderMongoRepository(bootstrap.MongoDB)
	paymentEventRepository := payments.NewPaymentEventMongoRepository(bootstrap.MongoDB)

	// Access
	authorizer := access.NewAuthorizer(
		membershipRepository,
		access.ParseAllowList(internalConfig.Access.AdminEmails),
		time.Duration(internalConfig.Access.LookupTimeoutInMilliseconds)*time.Millisecond,
		time.Duration(internalConfig.Access.SideEffectTimeoutInMilliseconds)*time.Millisecond,
		systemClock,
		log,
	)

	// Usecases
	tenantUsecase := tenants.NewTenantUsecase(businessRepository, membershipRepository, userRepository, internalConfig, log)
	slotUsecase := slots.NewSlotUsecase(businessRepository, internalConfig, systemClock, log)
	productUsecase := products.NewProductUsecase(tenantUsecase, productRepository, promotionRepository, redisRepository, objectStorage, internalConfig, systemClock, log)
	promotionUsecase := promotions.NewPromotionUsecase(tenantUsecase, promotionRepository, redisRepository, log)
	orderUsecase := orders.NewOrderUsecase(
		tenantUsecase,
		slotUsecase,
		productRepository,
		promotionRepository,
		orderRepository,
		checkoutService,
		eventPublisher,
		orderLimiter,
		internalConfig,
		systemClock,
		log,
	)
	paymentUsecase := payments.NewPaymentUsecase(orderUsecase, paymentEventRepository, redisRepository, internalConfig, systemClock, log)
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, authorizer, internalConfig, log)

	// Workers
	expiryWorker := orders.NewExpiryWorker(log, internalConfig, lockerService, orderUsecase)
	expiryWorker.Start(context.Background())
	bootstrap.WorkerStop = func() {
		expiryWorker.Stop()
		authorizer.Wait()
	}

	// HTTP
	mongoDB := bootstrap.MongoDB
	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares.NewMiddlewares(log, authUsecase, authorizer, internalConfig), routers.Controllers{
		Tenant:    controllers.NewTenantController(log, tenantUsecase),
		Product:   controllers.NewProductController(log, productUsecase),
		Promotion: controllers.NewPromotionController(log, promotionUsecase),
		Slot:      controllers.NewSlotController(log, slotUsecase),
		Order:     controllers.NewOrderController(log, orderUsecase),
		Auth:      controllers.NewAuthController(log, authUsecase, internalConfig),
		Business:  controllers.NewBusinessController(log, tenantUsecase),
		Payment:   controllers.NewPaymentController(log, paymentUsecase),
		Health: controllers.NewHealthController(log, map[string]controllers.Pinger{
			"mongodb": controllers.PingFunc(func(ctx context.Context) error {
				return mongoDB.Client().Ping(ctx, nil)
			}),
			"redis": redisRepository,
		}),
	})

	return nil
}
