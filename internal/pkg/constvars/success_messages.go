package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
)

const (
	GetTenantSuccessMessage        = "get business successfully"
	GetMenuSuccessMessage          = "get menu successfully"
	GetSlotsSuccessMessage         = "get pickup slots successfully"
	CreateOrderSuccessMessage      = "order created successfully"
	GetOrderSuccessMessage         = "get order successfully"
	ListOrdersSuccessMessage       = "get orders successfully"
	UpdateOrderStatusMessage       = "order status updated successfully"
	LoginSuccessMessage            = "successfully login"
	LogoutSuccessMessage           = "successfully logout"
	GetMeSuccessMessage            = "get current admin successfully"
	ListProductsSuccessMessage     = "get products successfully"
	CreateProductSuccessMessage    = "product created successfully"
	UpdateProductSuccessMessage    = "product updated successfully"
	DeleteProductSuccessMessage    = "product deleted successfully"
	UploadImageSuccessMessage      = "product image uploaded successfully"
	ListPromotionsSuccessMessage   = "get promotions successfully"
	CreatePromotionSuccessMessage  = "promotion created successfully"
	UpdatePromotionSuccessMessage  = "promotion updated successfully"
	DeletePromotionSuccessMessage  = "promotion deleted successfully"
	GetSettingsSuccessMessage      = "get settings successfully"
	UpdateSettingsSuccessMessage   = "settings updated successfully"
	ListBusinessesSuccessMessage   = "get businesses successfully"
	CreateBusinessSuccessMessage   = "business created successfully"
	AddMemberSuccessMessage        = "member added successfully"
	PaymentWebhookReceivedMessage  = "payment event received"
	PaymentWebhookDuplicateMessage = "payment event already processed"
)
