package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
)

type PaymentEventRepository interface {
	Insert(ctx context.Context, event *models.PaymentEvent) error
}

type PaymentUsecase interface {
	// HandleWebhook returns true when the event id was already processed.
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (bool, error)
}
