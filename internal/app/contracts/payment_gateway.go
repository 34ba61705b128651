package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
)

type PaymentGatewayService interface {
	CreateCheckoutSession(ctx context.Context, request *models.CheckoutSessionRequest) (*models.CheckoutSession, error)
}
