package constvars

const (
	TenantQueryParam        = "tenant"
	TenantCookieName        = "x-tenant-slug"
	TenantCookiePath        = "/"
	TenantCookieMaxAgeInSec = 2592000
	TenantSlugMaxLength     = 120

	AdminSessionCookieName = "pl_admin_session"
)

// TenantReservedPathSegments are first path segments that never name a tenant.
var TenantReservedPathSegments = []string{
	"",
	"admin",
	"cart",
	"menu",
	"reservas",
	"login",
	"logout",
	"settings",
	"api",
}

// StorefrontRouteSegments are the first segments of API routes below
// /<prefix>/<version>; they are routes, not tenants.
var StorefrontRouteSegments = []string{
	"tenant",
	"menu",
	"slots",
	"orders",
	"admin",
	"payments",
}

const (
	MemberRoleOwner = "owner"
	MemberRoleStaff = "staff"
)
