package controllers

import (
	"context"
	"errors"
	"net/http"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/delivery/http/middlewares"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type SlotController struct {
	Log         *zap.Logger
	SlotUsecase contracts.SlotUsecase
}

func NewSlotController(logger *zap.Logger, slotUsecase contracts.SlotUsecase) *SlotController {
	return &SlotController{
		Log:         logger,
		SlotUsecase: slotUsecase,
	}
}

// GetSlots lists the pickup times still bookable on the requested date.
func (ctrl *SlotController) GetSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get(constvars.QueryParamDate)
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("date is required"), constvars.QueryParamDate))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SlotUsecase.GetSlots(ctx, middlewares.TenantSlug(r.Context()), date)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotsSuccessMessage, result)
}
