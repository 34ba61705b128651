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

type OrderController struct {
	Log          *zap.Logger
	OrderUsecase contracts.OrderUsecase
}

func NewOrderController(logger *zap.Logger, orderUsecase contracts.OrderUsecase) *OrderController {
	return &OrderController{
		Log:          logger,
		OrderUsecase: orderUsecase,
	}
}

func (ctrl *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateOrder)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateOrderRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// checkout session creation talks to the payment gateway
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.OrderUsecase.CreateOrder(ctx, middlewares.TenantSlug(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateOrderSuccessMessage, result)
}

// GetOrder serves both the customer order page and the admin order detail.
func (ctrl *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, constvars.URLParamOrderID)
	if orderID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamOrderID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.OrderUsecase.GetOrder(ctx, middlewares.TenantSlug(r.Context()), orderID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOrderSuccessMessage, result)
}

func (ctrl *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListOrders{
		Status:     r.URL.Query().Get(constvars.QueryParamStatus),
		PickupDate: r.URL.Query().Get(constvars.QueryParamPickupDate),
		Pagination: utils.BuildPaginationRequest(r),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.OrderUsecase.ListOrders(ctx, middlewares.TenantSlug(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListOrdersSuccessMessage, pagination, result)
}

func (ctrl *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, constvars.URLParamOrderID)
	if orderID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamOrderID))
		return
	}

	identity, ok := middlewares.Identity(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := new(requests.UpdateOrderStatus)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.OrderUsecase.UpdateOrderStatus(ctx, middlewares.TenantSlug(r.Context()), orderID, identity.UserID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateOrderStatusMessage, result)
}
