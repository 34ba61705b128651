package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_TENANT_SLUG_KEY          ContextKey = "tenant_slug"
	CONTEXT_IDENTITY_KEY             ContextKey = "identity"
	CONTEXT_ACCESS_DECISION_KEY      ContextKey = "access_decision"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "PDLCL_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	DefaultPageSize        = 20
	MaxPageSize            = 100
)

const (
	TimeLayoutDate = "2006-01-02"
	TimeLayoutHHMM = "15:04"
)

const (
	ResourceAdminBusinesses = "/admin/businesses"
	ResourceAdminOrders     = "/admin/orders"
)
