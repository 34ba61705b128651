package middlewares

import (
	"context"
	"net/http"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate accepts the admin JWT as a Bearer token or the session cookie
// and puts the identity and session id in the context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.BearerToken(r)
		if token == "" {
			if cookie, err := r.Cookie(constvars.AdminSessionCookieName); err == nil {
				token = cookie.Value
			}
		}

		session, err := m.AuthUsecase.Authenticate(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		identity := models.Identity{UserID: session.UserID, Email: session.Email}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_IDENTITY_KEY, identity)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireTenantAdmin lets through staff of the resolved tenant and super
// admins.
func (m *Middlewares) RequireTenantAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := Identity(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		slug := TenantSlug(r.Context())
		decision := m.Authorizer.Authorize(r.Context(), identity, slug)
		if !decision.Allowed {
			m.Log.Info("Middlewares.RequireTenantAdmin access denied",
				zap.String(constvars.LoggingUserIDKey, identity.UserID),
				zap.String(constvars.LoggingTenantSlugKey, slug),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAccessDenied(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACCESS_DECISION_KEY, decision)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := Identity(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		decision := m.Authorizer.Authorize(r.Context(), identity, "")
		if !decision.IsSuperAdmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSuperAdminRequired(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACCESS_DECISION_KEY, decision)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func Identity(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(constvars.CONTEXT_IDENTITY_KEY).(models.Identity)
	return identity, ok
}

func SessionID(ctx context.Context) string {
	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return sessionID
}
