package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEMultipartForm   = "multipart/form-data"
	MIMETextPlain       = "text/plain"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusAccepted            = 202
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusConflict            = 409
	StatusRequestEntityTooBig = 413
	StatusUnsupportedMedia    = 415
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization    = "Authorization"
	HeaderContentType      = "Content-Type"
	HeaderXRequestID       = "X-Request-ID"
	HeaderRetryAfter       = "Retry-After"
	HeaderPaymentSignature = "Payment-Signature"
	HeaderIdempotencyKey   = "Idempotency-Key"
)

const (
	AuthorizationBearerPrefix = "Bearer "
)

const (
	URLParamProductID   = "product_id"
	URLParamPromotionID = "promotion_id"
	URLParamOrderID     = "order_id"
	URLParamTenantSlug  = "tenant_slug"
	URLParamSlug        = "slug"

	QueryParamDate       = "date"
	QueryParamStatus     = "status"
	QueryParamPickupDate = "pickup_date"

	FormFieldProductImage = "image"
)
