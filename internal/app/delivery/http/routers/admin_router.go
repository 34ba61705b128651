package routers

import (
	"net/http"
	"pidelocal-service/internal/app/delivery/http/controllers"
	"pidelocal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, loginLimiter func(http.Handler) http.Handler, authController *controllers.AuthController) {
	router.With(loginLimiter).Post("/auth/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/auth/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/me", authController.Me)
}

func attachTenantAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, controllers Controllers) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireTenantAdmin)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.Product.ListProducts)
			r.Post("/", controllers.Product.CreateProduct)
			r.Put("/{product_id}", controllers.Product.UpdateProduct)
			r.Delete("/{product_id}", controllers.Product.DeleteProduct)
			r.Post("/{product_id}/image", controllers.Product.UploadProductImage)
		})

		r.Route("/promotions", func(r chi.Router) {
			r.Get("/", controllers.Promotion.ListPromotions)
			r.Post("/", controllers.Promotion.CreatePromotion)
			r.Put("/{promotion_id}", controllers.Promotion.UpdatePromotion)
			r.Delete("/{promotion_id}", controllers.Promotion.DeletePromotion)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.Order.ListOrders)
			r.Get("/{order_id}", controllers.Order.GetOrder)
			r.Patch("/{order_id}/status", controllers.Order.UpdateOrderStatus)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/opening-hours", controllers.Tenant.GetOpeningHours)
			r.Put("/opening-hours", controllers.Tenant.UpdateOpeningHours)
			r.Get("/slots", controllers.Tenant.GetSlotSettings)
			r.Put("/slots", controllers.Tenant.UpdateSlotSettings)
			r.Get("/payment", controllers.Tenant.GetPaymentSettings)
			r.Put("/payment", controllers.Tenant.UpdatePaymentSettings)
		})
	})
}

func attachSuperAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, businessController *controllers.BusinessController) {
	router.Route("/businesses", func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireSuperAdmin)

		r.Get("/", businessController.ListBusinesses)
		r.Post("/", businessController.CreateBusiness)
		r.Post("/{slug}/members", businessController.AddMember)
	})
}
