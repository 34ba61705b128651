package controllers

import (
	"context"
	"net/http"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/delivery/http/middlewares"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PromotionController struct {
	Log              *zap.Logger
	PromotionUsecase contracts.PromotionUsecase
}

func NewPromotionController(logger *zap.Logger, promotionUsecase contracts.PromotionUsecase) *PromotionController {
	return &PromotionController{
		Log:              logger,
		PromotionUsecase: promotionUsecase,
	}
}

func (ctrl *PromotionController) ListPromotions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PromotionUsecase.ListPromotions(ctx, middlewares.TenantSlug(r.Context()))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListPromotionsSuccessMessage, result)
}

func (ctrl *PromotionController) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpsertPromotion)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpsertPromotionRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PromotionUsecase.CreatePromotion(ctx, middlewares.TenantSlug(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePromotionSuccessMessage, result)
}

func (ctrl *PromotionController) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	promotionID := chi.URLParam(r, constvars.URLParamPromotionID)
	if promotionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPromotionID))
		return
	}

	request := new(requests.UpsertPromotion)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpsertPromotionRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PromotionUsecase.UpdatePromotion(ctx, middlewares.TenantSlug(r.Context()), promotionID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePromotionSuccessMessage, result)
}

func (ctrl *PromotionController) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	promotionID := chi.URLParam(r, constvars.URLParamPromotionID)
	if promotionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPromotionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.PromotionUsecase.DeletePromotion(ctx, middlewares.TenantSlug(r.Context()), promotionID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePromotionSuccessMessage, nil)
}
