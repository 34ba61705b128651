package middlewares

import (
	"net/http"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the general per-IP limiter and the stricter one
// used on the admin login.
func (m *Middlewares) CreateRateLimiters() (normalLimiter, loginLimiter func(next http.Handler) http.Handler) {
	app := m.InternalConfig.App
	window := time.Duration(app.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}

	normalLimiter = httprate.Limit(app.MaxRequests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(m.tooManyRequests),
	)
	loginLimiter = httprate.Limit(app.LoginMaxRequests, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(m.tooManyRequests),
	)
	return normalLimiter, loginLimiter
}

func (m *Middlewares) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
}
