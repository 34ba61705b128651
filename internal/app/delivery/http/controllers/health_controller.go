package controllers

import (
	"context"
	"net/http"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthController struct {
	Log    *zap.Logger
	Checks map[string]Pinger
}

func NewHealthController(logger *zap.Logger, checks map[string]Pinger) *HealthController {
	return &HealthController{
		Log:    logger,
		Checks: checks,
	}
}

func (ctrl *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, nil)
}

// Readiness pings every dependency and fails on the first one that is down.
func (ctrl *HealthController) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := make(map[string]string, len(ctrl.Checks))
	for name, check := range ctrl.Checks {
		err := check.Ping(ctx)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDependencyUnavailable(err, name))
			return
		}
		status[name] = "up"
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, status)
}
