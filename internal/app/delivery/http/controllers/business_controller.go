package controllers

import (
	"context"
	"net/http"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BusinessController serves the super admin routes. The business is taken
// from the URL instead of the resolved tenant.
type BusinessController struct {
	Log           *zap.Logger
	TenantUsecase contracts.TenantUsecase
}

func NewBusinessController(logger *zap.Logger, tenantUsecase contracts.TenantUsecase) *BusinessController {
	return &BusinessController{
		Log:           logger,
		TenantUsecase: tenantUsecase,
	}
}

func (ctrl *BusinessController) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	request := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.TenantUsecase.ListBusinesses(ctx, &request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListBusinessesSuccessMessage, pagination, result)
}

func (ctrl *BusinessController) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBusiness)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateBusinessRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.TenantUsecase.CreateBusiness(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBusinessSuccessMessage, result)
}

func (ctrl *BusinessController) AddMember(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, constvars.URLParamSlug)
	if slug == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamSlug))
		return
	}

	request := new(requests.AddMember)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeAddMemberRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.TenantUsecase.AddMember(ctx, slug, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddMemberSuccessMessage, result)
}
