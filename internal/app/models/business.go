package models

import (
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/dto/responses"
	"time"
)

type Business struct {
	ID              string                     `bson:"_id"`
	Slug            string                     `bson:"slug"`
	Name            string                     `bson:"name"`
	Timezone        string                     `bson:"timezone"`
	OpeningHours    map[string][]OpeningPeriod `bson:"openingHours"`
	SlotSettings    SlotSettings               `bson:"slotSettings"`
	PaymentSettings PaymentSettings            `bson:"paymentSettings"`
	TimeModel       `bson:",inline"`
}

// OpeningPeriod is stored as wall-clock "HH:MM" strings, Close may be "24:00".
type OpeningPeriod struct {
	Open  string `bson:"open"`
	Close string `bson:"close"`
}

type SlotSettings struct {
	SlotMinutes        int `bson:"slotMinutes"`
	PrepMinutes        int `bson:"prepMinutes"`
	CloseBufferMinutes int `bson:"closeBufferMinutes"`
}

type PaymentSettings struct {
	Enabled   bool   `bson:"enabled"`
	AccountID string `bson:"accountId,omitempty"`
	Currency  string `bson:"currency"`
}

type BusinessMember struct {
	ID           string     `bson:"_id"`
	BusinessID   string     `bson:"businessId"`
	UserID       string     `bson:"userId"`
	Role         string     `bson:"role"`
	LastAccessAt *time.Time `bson:"lastAccessAt,omitempty"`
	TimeModel    `bson:",inline"`
}

func (b *Business) ConvertToOpeningHoursResponse() responses.OpeningHours {
	days := make(map[string][]responses.OpeningPeriod, len(b.OpeningHours))
	for day, periods := range b.OpeningHours {
		converted := make([]responses.OpeningPeriod, 0, len(periods))
		for _, p := range periods {
			converted = append(converted, responses.OpeningPeriod{Open: p.Open, Close: p.Close})
		}
		days[day] = converted
	}
	return responses.OpeningHours{Days: days}
}

func (b *Business) ConvertToPaymentSettingsResponse() responses.PaymentSettings {
	return responses.PaymentSettings{
		Enabled:   b.PaymentSettings.Enabled,
		AccountID: b.PaymentSettings.AccountID,
		Currency:  b.PaymentSettings.Currency,
	}
}

func (b *Business) ConvertToBusinessResponse() responses.Business {
	return responses.Business{
		ID:        b.ID,
		Slug:      b.Slug,
		Name:      b.Name,
		Timezone:  b.Timezone,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// Currency returns the configured payment currency or the service default.
func (b *Business) Currency() string {
	if b.PaymentSettings.Currency != "" {
		return b.PaymentSettings.Currency
	}
	return constvars.DefaultCurrency
}
