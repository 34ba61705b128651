package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
)

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *models.OrderEvent) error
}
