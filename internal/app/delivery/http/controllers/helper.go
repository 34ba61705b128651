package controllers

import (
	"context"
	"errors"
	"net/http"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
