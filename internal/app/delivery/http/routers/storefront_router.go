package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachStorefrontRoutes(router chi.Router, controllers Controllers) {
	router.Get("/tenant", controllers.Tenant.GetTenant)
	router.Get("/menu", controllers.Product.GetMenu)
	router.Get("/slots", controllers.Slot.GetSlots)
	router.Post("/orders", controllers.Order.CreateOrder)
	router.Get("/orders/{order_id}", controllers.Order.GetOrder)
}
