package controllers

import (
	"context"
	"io"
	"net/http"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	return &PaymentController{
		Log:            logger,
		PaymentUsecase: paymentUsecase,
	}
}

// Webhook receives gateway events. The body is read raw because the
// signature covers the exact bytes sent.
func (ctrl *PaymentController) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	duplicate, err := ctrl.PaymentUsecase.HandleWebhook(ctx, payload, r.Header.Get(constvars.HeaderPaymentSignature))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.PaymentWebhookReceivedMessage
	if duplicate {
		message = constvars.PaymentWebhookDuplicateMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, nil)
}
