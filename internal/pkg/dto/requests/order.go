package requests

type CreateOrder struct {
	CustomerName  string            `json:"customer_name" validate:"required,max=120"`
	CustomerPhone string            `json:"customer_phone" validate:"required,min=6,max=32"`
	CustomerEmail string            `json:"customer_email" validate:"omitempty,email"`
	Items         []CreateOrderItem `json:"items" validate:"required,min=1,max=50,dive"`
	PickupDate    string            `json:"pickup_date" validate:"required,isodate"`
	PickupTime    string            `json:"pickup_time" validate:"required,hhmm"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash card"`
	PromotionCode string            `json:"promotion_code" validate:"omitempty,max=40"`
	Notes         string            `json:"notes" validate:"max=500"`
}

type CreateOrderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1,lte=99"`
}

type ListOrders struct {
	Status     string `validate:"omitempty,oneof=pending awaiting_payment paid confirmed preparing ready completed cancelled"`
	PickupDate string `validate:"omitempty,isodate"`
	Pagination
}

type UpdateOrderStatus struct {
	Status string `json:"status" validate:"required,oneof=pending awaiting_payment paid confirmed preparing ready completed cancelled"`
}
