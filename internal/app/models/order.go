package models

import (
	"pidelocal-service/internal/pkg/dto/responses"
	"time"
)

type Order struct {
	ID                string              `bson:"_id"`
	BusinessID        string              `bson:"businessId"`
	Number            string              `bson:"number"`
	Status            string              `bson:"status"`
	CustomerName      string              `bson:"customerName"`
	CustomerPhone     string              `bson:"customerPhone"`
	CustomerEmail     string              `bson:"customerEmail,omitempty"`
	Items             []OrderItem         `bson:"items"`
	PickupDate        string              `bson:"pickupDate"`
	PickupTime        string              `bson:"pickupTime"`
	PaymentMethod     string              `bson:"paymentMethod"`
	PaymentStatus     string              `bson:"paymentStatus"`
	CheckoutSessionID string              `bson:"checkoutSessionId,omitempty"`
	PromotionID       string              `bson:"promotionId,omitempty"`
	PromotionCode     string              `bson:"promotionCode,omitempty"`
	SubtotalCents     int64               `bson:"subtotalCents"`
	DiscountCents     int64               `bson:"discountCents"`
	TotalCents        int64               `bson:"totalCents"`
	Currency          string              `bson:"currency"`
	Notes             string              `bson:"notes,omitempty"`
	StatusHistory     []OrderStatusChange `bson:"statusHistory"`
	TimeModel         `bson:",inline"`
}

type OrderItem struct {
	ProductID      string `bson:"productId"`
	Name           string `bson:"name"`
	Quantity       int    `bson:"quantity"`
	UnitPriceCents int64  `bson:"unitPriceCents"`
	LineTotalCents int64  `bson:"lineTotalCents"`
}

type OrderStatusChange struct {
	From      string    `bson:"from"`
	To        string    `bson:"to"`
	ChangedBy string    `bson:"changedBy"`
	ChangedAt time.Time `bson:"changedAt"`
}

type OrderFilter struct {
	BusinessID string
	Status     string
	PickupDate string
	Page       int
	PageSize   int
}

// OrderEvent is the message published to the order events exchange.
type OrderEvent struct {
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	BusinessID     string    `json:"business_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	PickupDate     string    `json:"pickup_date"`
	PickupTime     string    `json:"pickup_time"`
	TotalCents     int64     `json:"total_cents"`
	Currency       string    `json:"currency"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (o *Order) ConvertToOrderResponse() responses.Order {
	items := make([]responses.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, responses.OrderItem{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			LineTotalCents: item.LineTotalCents,
		})
	}
	return responses.Order{
		ID:            o.ID,
		Number:        o.Number,
		Status:        o.Status,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: o.CustomerEmail,
		Items:         items,
		PickupDate:    o.PickupDate,
		PickupTime:    o.PickupTime,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		PromotionCode: o.PromotionCode,
		SubtotalCents: o.SubtotalCents,
		DiscountCents: o.DiscountCents,
		TotalCents:    o.TotalCents,
		Currency:      o.Currency,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     o.UpdatedAt.Format(time.RFC3339),
	}
}

// Event builds the broker message for this order in its current state.
func (o *Order) Event(eventType, previousStatus string, occurredAt time.Time) *OrderEvent {
	return &OrderEvent{
		Type:           eventType,
		OrderID:        o.ID,
		OrderNumber:    o.Number,
		BusinessID:     o.BusinessID,
		Status:         o.Status,
		PreviousStatus: previousStatus,
		PickupDate:     o.PickupDate,
		PickupTime:     o.PickupTime,
		TotalCents:     o.TotalCents,
		Currency:       o.Currency,
		OccurredAt:     occurredAt,
	}
}
