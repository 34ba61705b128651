package routers

import (
	"fmt"
	"io"
	"net/http"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/delivery/http/controllers"
	"pidelocal-service/internal/app/delivery/http/middlewares"
	"pidelocal-service/internal/app/services/shared/metrics"
	"pidelocal-service/internal/pkg/constvars"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Tenant    *controllers.TenantController
	Product   *controllers.ProductController
	Promotion *controllers.PromotionController
	Slot      *controllers.SlotController
	Order     *controllers.OrderController
	Auth      *controllers.AuthController
	Business  *controllers.BusinessController
	Payment   *controllers.PaymentController
	Health    *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)
	router.Use(newCompressor().Handler)

	normalLimiter, loginLimiter := middlewares.CreateRateLimiters()

	router.Get("/healthz", controllers.Health.Liveness)
	router.Get("/readyz", controllers.Health.Readiness)
	if internalConfig.Metrics.Enabled {
		router.Method(http.MethodGet, internalConfig.Metrics.Path, metrics.Handler())
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(normalLimiter)

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, controllers.Payment)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.ResolveTenant)
				attachStorefrontRoutes(r, controllers)
				r.Route(fmt.Sprintf("/{%s}", constvars.URLParamTenantSlug), func(r chi.Router) {
					attachStorefrontRoutes(r, controllers)
				})

				r.Route("/admin", func(r chi.Router) {
					attachAdminAuthRoutes(r, middlewares, loginLimiter, controllers.Auth)
					attachTenantAdminRoutes(r, middlewares, controllers)
					attachSuperAdminRoutes(r, middlewares, controllers.Business)
				})
			})
		})
	})
}

// newCompressor compresses JSON responses with brotli when the client accepts
// it and falls back to gzip or deflate.
func newCompressor() *chiMiddleware.Compressor {
	compressor := chiMiddleware.NewCompressor(5, "application/json")
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return compressor
}
