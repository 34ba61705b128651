package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"uuid":     "must be a valid UUID",
	"url":      "must be a valid URL",
	"dive":     "is invalid",
	"slug":     "must contain only lowercase letters, digits, '-', '_' or '.'",
	"hhmm":     "must be a time in HH:MM format",
	"isodate":  "must be a date in YYYY-MM-DD format",
	"timezone": "must be a valid IANA timezone",
	"currency": "must be a 3-letter currency code",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "please login to continue"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientTenantRequired                = "tenant is required"
	ErrClientTenantNotFound                = "business not found"
	ErrClientTenantAlreadyExists           = "business slug already used"
	ErrClientSlotNotAvailable              = "selected pickup time is not available"
	ErrClientProductNotFound               = "product not found"
	ErrClientProductUnavailable            = "one or more products are not available"
	ErrClientPromotionNotFound             = "promotion not found"
	ErrClientPromotionNotApplicable        = "promotion code is not valid for this order"
	ErrClientOrderNotFound                 = "order not found"
	ErrClientInvalidStatusTransition       = "order status change is not allowed"
	ErrClientCardPaymentsDisabled          = "card payments are not enabled for this business"
	ErrClientInvalidSchedule               = "opening hours are invalid"
	ErrClientInvalidImage                  = "file must be an image"
	ErrClientImageTooLarge                 = "image is too large"
	ErrClientInvalidSignature              = "invalid signature"
	ErrClientTooManyRequests               = "too many requests"
	ErrClientUserAlreadyMember             = "user is already a member of this business"
	ErrClientUserNotFound                  = "user not found"
	ErrClientServiceUnavailable            = "service is not ready"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm  = "cannot parse multipart form"
	ErrDevCannotReadBody            = "cannot read request body"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevServerProcess             = "server process failed"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevURLParamIDValidation      = "url param %s validation failed"
	ErrDevAuthTokenMissing          = "auth token missing"
	ErrDevAuthTokenInvalid          = "auth token invalid"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevAuthGenerateToken         = "failed to generate auth token"
	ErrDevAuthSessionNotFound       = "session not found or expired"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevTenantMissing             = "tenant slug missing from request"
	ErrDevTenantNotFound            = "business not found for slug"
	ErrDevTenantDuplicate           = "business slug already exists"
	ErrDevAccessDenied              = "access denied by authorizer"
	ErrDevSuperAdminRequired        = "super admin required"
	ErrDevSlotNotAvailable          = "pickup slot not in generated slot set"
	ErrDevSlotSettingsInvalid       = "slot settings invalid"
	ErrDevScheduleInvalid           = "weekly schedule invalid"
	ErrDevProductNotFound           = "product not found"
	ErrDevProductUnavailable        = "product missing or inactive"
	ErrDevPromotionNotFound         = "promotion not found"
	ErrDevPromotionNotApplicable    = "promotion not applicable"
	ErrDevOrderNotFound             = "order not found"
	ErrDevInvalidStatusTransition   = "invalid order status transition from %s to %s"
	ErrDevCardPaymentsDisabled      = "card payments disabled for business"
	ErrDevInvalidImage              = "uploaded file is not an image"
	ErrDevImageTooLarge             = "uploaded image exceeds size limit"
	ErrDevPaymentSignatureInvalid   = "payment webhook signature invalid"
	ErrDevPaymentGatewayRequest     = "payment gateway request failed"
	ErrDevPaymentGatewayStatus      = "payment gateway returned status %d"
	ErrDevUserAlreadyMember         = "membership already exists"
	ErrDevUserNotFound              = "user not found"
	ErrDevDBFailedToFindDocument    = "failed to find document"
	ErrDevDBFailedToInsertDocument  = "failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "failed to update document"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents"
	ErrDevDBFailedToCountDocument   = "failed to count documents"
	ErrDevDBFailedToCreateIndex     = "failed to create index on collection %s"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisGetNoData            = "no data in redis for key %s"
	ErrDevRedisSetData              = "failed to set data to redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to presign object url in bucket %s"
	ErrDevMinioFailedToRemoveObject = "failed to remove object from bucket %s"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to exchange %s"
	ErrDevDependencyUnavailable     = "dependency %s is unavailable"
)
