package payments

import (
	"context"
	"errors"
	"fmt"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/app/services/shared/clock"
	"pidelocal-service/internal/app/services/shared/metrics"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type paymentUsecase struct {
	OrderUsecase           contracts.OrderUsecase
	PaymentEventRepository contracts.PaymentEventRepository
	RedisRepository        contracts.RedisRepository
	InternalConfig         *config.InternalConfig
	Clock                  clock.Clock
	Log                    *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	orderUsecase contracts.OrderUsecase,
	paymentEventRepository contracts.PaymentEventRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	clk clock.Clock,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			OrderUsecase:           orderUsecase,
			PaymentEventRepository: paymentEventRepository,
			RedisRepository:        redisRepository,
			InternalConfig:         internalConfig,
			Clock:                  clk,
			Log:                    logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.HandleWebhook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	gateway := uc.InternalConfig.PaymentGateway
	tolerance := time.Duration(gateway.SignatureToleranceInSeconds) * time.Second
	err := VerifySignature(payload, signatureHeader, gateway.WebhookSecret, tolerance, uc.Clock.Now())
	if err != nil {
		metrics.IncPaymentWebhook("", constvars.PaymentWebhookOutcomeInvalidSignature)
		uc.Log.Warn("paymentUsecase.HandleWebhook rejected signature",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrPaymentSignatureInvalid(err)
	}

	if !gjson.ValidBytes(payload) {
		return false, exceptions.ErrCannotParseJSON(errors.New("payload is not valid json"))
	}
	eventID := gjson.GetBytes(payload, "id").String()
	eventType := gjson.GetBytes(payload, "type").String()
	if eventID == "" || eventType == "" {
		return false, exceptions.ErrInputValidation(errors.New("event id and type are required"))
	}

	idempotencyKey := fmt.Sprintf(constvars.RedisKeyPaymentEventFormat, eventID)
	first, err := uc.RedisRepository.TrySetNX(ctx, idempotencyKey, eventType, constvars.PaymentEventIdempotencyTTLInHours*time.Hour)
	if err != nil {
		uc.Log.Error("paymentUsecase.HandleWebhook error calling RedisRepository.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, idempotencyKey),
			zap.Error(err),
		)
		return false, err
	}
	if !first {
		metrics.IncPaymentWebhook(eventType, constvars.PaymentWebhookOutcomeDuplicate)
		uc.Log.Info("paymentUsecase.HandleWebhook duplicate event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentEventID, eventID),
		)
		return true, nil
	}

	var event requests.PaymentWebhookEvent
	err = json.Unmarshal(payload, &event)
	if err != nil {
		uc.releaseIdempotencyKey(ctx, idempotencyKey)
		return false, exceptions.ErrCannotParseJSON(err)
	}

	orderID := event.Data.Object.OrderID()
	outcome, err := uc.applyEvent(ctx, &event, orderID)
	if err != nil {
		// let the gateway retry the delivery
		uc.releaseIdempotencyKey(ctx, idempotencyKey)
		metrics.IncPaymentWebhook(event.Type, constvars.PaymentWebhookOutcomeFailed)
		return false, err
	}

	record := &models.PaymentEvent{
		ID:                event.ID,
		Type:              event.Type,
		OrderID:           orderID,
		CheckoutSessionID: event.Data.Object.ID,
		ReceivedAt:        uc.Clock.Now().UTC(),
	}
	if err := uc.PaymentEventRepository.Insert(ctx, record); err != nil {
		uc.Log.Warn("paymentUsecase.HandleWebhook error calling PaymentEventRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentEventID, event.ID),
			zap.Error(err),
		)
	}

	metrics.IncPaymentWebhook(event.Type, outcome)
	uc.Log.Info("paymentUsecase.HandleWebhook succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentEventKey, event.Type),
		zap.String(constvars.LoggingPaymentEventID, event.ID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	return false, nil
}

func (uc *paymentUsecase) applyEvent(ctx context.Context, event *requests.PaymentWebhookEvent, orderID string) (string, error) {
	var paid bool
	switch event.Type {
	case constvars.PaymentEventCheckoutCompleted:
		paid = true
	case constvars.PaymentEventCheckoutExpired, constvars.PaymentEventPaymentFailed:
		paid = false
	default:
		return constvars.PaymentWebhookOutcomeIgnored, nil
	}

	if orderID == "" {
		uc.Log.Warn("paymentUsecase.applyEvent event without order reference",
			zap.String(constvars.LoggingPaymentEventID, event.ID),
		)
		return constvars.PaymentWebhookOutcomeOrderNotFound, nil
	}

	err := uc.OrderUsecase.ApplyPaymentResult(ctx, orderID, paid)
	if err != nil {
		if exceptions.StatusCode(err) == constvars.StatusNotFound {
			uc.Log.Warn("paymentUsecase.applyEvent unknown order",
				zap.String(constvars.LoggingPaymentEventID, event.ID),
				zap.String(constvars.LoggingOrderIDKey, orderID),
			)
			return constvars.PaymentWebhookOutcomeOrderNotFound, nil
		}
		uc.Log.Error("paymentUsecase.applyEvent error calling OrderUsecase.ApplyPaymentResult",
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		return "", err
	}
	return constvars.PaymentWebhookOutcomeProcessed, nil
}

func (uc *paymentUsecase) releaseIdempotencyKey(ctx context.Context, key string) {
	err := uc.RedisRepository.Delete(ctx, key)
	if err != nil {
		uc.Log.Warn("paymentUsecase.HandleWebhook error releasing idempotency key",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}
