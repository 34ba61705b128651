package controllers

import (
	"context"
	"io"
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

// multipartMemoryLimit is how much of an upload ParseMultipartForm keeps in memory.
const multipartMemoryLimit = 8 << 20

type ProductController struct {
	Log            *zap.Logger
	ProductUsecase contracts.ProductUsecase
}

func NewProductController(logger *zap.Logger, productUsecase contracts.ProductUsecase) *ProductController {
	return &ProductController{
		Log:            logger,
		ProductUsecase: productUsecase,
	}
}

func (ctrl *ProductController) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProductUsecase.GetMenu(ctx, middlewares.TenantSlug(r.Context()))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMenuSuccessMessage, result)
}

func (ctrl *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProductUsecase.ListProducts(ctx, middlewares.TenantSlug(r.Context()))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListProductsSuccessMessage, result)
}

func (ctrl *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpsertProduct)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpsertProductRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProductUsecase.CreateProduct(ctx, middlewares.TenantSlug(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateProductSuccessMessage, result)
}

func (ctrl *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, constvars.URLParamProductID)
	if productID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamProductID))
		return
	}

	request := new(requests.UpsertProduct)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpsertProductRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProductUsecase.UpdateProduct(ctx, middlewares.TenantSlug(r.Context()), productID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProductSuccessMessage, result)
}

func (ctrl *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, constvars.URLParamProductID)
	if productID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamProductID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.ProductUsecase.DeleteProduct(ctx, middlewares.TenantSlug(r.Context()), productID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteProductSuccessMessage, nil)
}

func (ctrl *ProductController) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, constvars.URLParamProductID)
	if productID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamProductID))
		return
	}

	err := r.ParseMultipartForm(multipartMemoryLimit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.FormFieldProductImage)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	request := &requests.UploadProductImage{
		ProductID:   productID,
		FileName:    header.Filename,
		ContentType: header.Header.Get(constvars.HeaderContentType),
		Size:        header.Size,
		Data:        data,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ProductUsecase.UploadProductImage(ctx, middlewares.TenantSlug(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadImageSuccessMessage, result)
}
