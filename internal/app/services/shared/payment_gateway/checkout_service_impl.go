package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const checkoutSessionsPath = "/v1/checkout/sessions"

type checkoutService struct {
	BaseUrl    string
	ApiKey     string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

type checkoutSessionPayload struct {
	AmountCents      int64             `json:"amount"`
	Currency         string            `json:"currency"`
	ClientReference  string            `json:"client_reference_id"`
	SuccessURL       string            `json:"success_url"`
	CancelURL        string            `json:"cancel_url"`
	ConnectedAccount string            `json:"connected_account,omitempty"`
	ExpiresAt        int64             `json:"expires_at,omitempty"`
	Metadata         map[string]string `json:"metadata"`
}

type checkoutSessionResult struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func NewCheckoutService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	ratePerSecond := internalConfig.PaymentGateway.RateLimitPerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	return &checkoutService{
		BaseUrl: strings.TrimRight(internalConfig.PaymentGateway.BaseUrl, "/"),
		ApiKey:  internalConfig.PaymentGateway.ApiKey,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.PaymentGateway.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
		Log:     logger,
	}
}

func (s *checkoutService) CreateCheckoutSession(ctx context.Context, request *models.CheckoutSessionRequest) (*models.CheckoutSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("checkoutService.CreateCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
	)

	err := s.Limiter.Wait(ctx)
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}

	payload := checkoutSessionPayload{
		AmountCents:      request.AmountCents,
		Currency:         request.Currency,
		ClientReference:  request.OrderID,
		SuccessURL:       request.SuccessURL,
		CancelURL:        request.CancelURL,
		ConnectedAccount: request.AccountID,
		Metadata: map[string]string{
			"order_id":     request.OrderID,
			"order_number": request.OrderNumber,
		},
	}
	if !request.ExpiresAt.IsZero() {
		payload.ExpiresAt = request.ExpiresAt.Unix()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl+checkoutSessionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpRequest.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+s.ApiKey)
	httpRequest.Header.Set(constvars.HeaderIdempotencyKey, request.OrderID)

	httpResponse, err := s.HTTPClient.Do(httpRequest)
	if err != nil {
		s.Log.Error("checkoutService.CreateCheckoutSession error calling payment gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}
	defer httpResponse.Body.Close()

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		err := fmt.Errorf("payment gateway response: %s", strings.TrimSpace(string(responseBody)))
		s.Log.Error("checkoutService.CreateCheckoutSession unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, httpResponse.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentGatewayStatus(err, httpResponse.StatusCode)
	}

	var result checkoutSessionResult
	err = json.Unmarshal(responseBody, &result)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if result.ID == "" || result.URL == "" {
		return nil, exceptions.ErrPaymentGatewayRequest(fmt.Errorf("payment gateway returned an incomplete checkout session"))
	}

	s.Log.Info("checkoutService.CreateCheckoutSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
		zap.String(constvars.LoggingCheckoutIDKey, result.ID),
	)
	return &models.CheckoutSession{ID: result.ID, URL: result.URL}, nil
}
