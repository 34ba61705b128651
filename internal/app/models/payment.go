package models

import "time"

type PaymentEvent struct {
	ID                string    `bson:"_id"`
	Type              string    `bson:"type"`
	OrderID           string    `bson:"orderId,omitempty"`
	CheckoutSessionID string    `bson:"checkoutSessionId,omitempty"`
	ReceivedAt        time.Time `bson:"receivedAt"`
}

type CheckoutSessionRequest struct {
	OrderID     string
	OrderNumber string
	AmountCents int64
	Currency    string
	AccountID   string
	SuccessURL  string
	CancelURL   string
	ExpiresAt   time.Time
}

type CheckoutSession struct {
	ID  string
	URL string
}
