package middlewares

import (
	"context"
	"net/http"
	"pidelocal-service/internal/app/services/core/tenants"
	"pidelocal-service/internal/pkg/constvars"
	"slices"
	"strings"
)

// ResolveTenant stores the tenant slug of the request in the context. When
// the slug came from somewhere other than the cookie, the cookie is refreshed
// so later requests without a subdomain or query keep the same tenant.
func (m *Middlewares) ResolveTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieValue := ""
		if cookie, err := r.Cookie(constvars.TenantCookieName); err == nil {
			cookieValue = cookie.Value
		}

		slug := tenants.ResolveSlug(tenants.Sources{
			Query:  r.URL.Query().Get(constvars.TenantQueryParam),
			Cookie: cookieValue,
			Host:   r.Host,
			Path:   m.tenantPath(r.URL.Path),
		})

		if slug != "" && slug != cookieValue {
			http.SetCookie(w, &http.Cookie{
				Name:     constvars.TenantCookieName,
				Value:    slug,
				Path:     constvars.TenantCookiePath,
				MaxAge:   constvars.TenantCookieMaxAgeInSec,
				HttpOnly: true,
				Secure:   m.InternalConfig.App.Env == "production",
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_TENANT_SLUG_KEY, slug)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tenantPath drops the "/<prefix>/<version>" part of API paths so the first
// remaining segment can name the tenant, as in /api/v1/churreria/menu. Paths
// that start with a route of their own carry no tenant.
func (m *Middlewares) tenantPath(path string) string {
	apiPrefix := "/" + m.InternalConfig.App.EndpointPrefix + "/" + m.InternalConfig.App.Version
	rest, ok := strings.CutPrefix(path, apiPrefix)
	if !ok || (rest != "" && !strings.HasPrefix(rest, "/")) {
		return path
	}

	segment, _, _ := strings.Cut(strings.TrimPrefix(rest, "/"), "/")
	if slices.Contains(constvars.StorefrontRouteSegments, strings.ToLower(segment)) {
		return ""
	}
	return rest
}

func TenantSlug(ctx context.Context) string {
	slug, _ := ctx.Value(constvars.CONTEXT_TENANT_SLUG_KEY).(string)
	return slug
}
