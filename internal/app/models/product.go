package models

import (
	"pidelocal-service/internal/pkg/dto/responses"
	"time"
)

type Product struct {
	ID          string   `bson:"_id"`
	BusinessID  string   `bson:"businessId"`
	Name        string   `bson:"name"`
	Description string   `bson:"description,omitempty"`
	Category    string   `bson:"category"`
	PriceCents  int64    `bson:"priceCents"`
	Active      bool     `bson:"active"`
	SortOrder   int      `bson:"sortOrder"`
	Allergens   []string `bson:"allergens,omitempty"`
	ImageObject string   `bson:"imageObject,omitempty"`
	TimeModel   `bson:",inline"`
}

type Promotion struct {
	ID               string     `bson:"_id"`
	BusinessID       string     `bson:"businessId"`
	Name             string     `bson:"name"`
	Code             string     `bson:"code,omitempty"`
	Type             string     `bson:"type"`
	Value            int64      `bson:"value"`
	MinSubtotalCents int64      `bson:"minSubtotalCents"`
	Active           bool       `bson:"active"`
	StartsAt         *time.Time `bson:"startsAt,omitempty"`
	EndsAt           *time.Time `bson:"endsAt,omitempty"`
	TimeModel        `bson:",inline"`
}

func (p *Product) ConvertToProductResponse(imageURL string) responses.Product {
	return responses.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		PriceCents:  p.PriceCents,
		Active:      p.Active,
		SortOrder:   p.SortOrder,
		Allergens:   p.Allergens,
		ImageURL:    imageURL,
	}
}

func (p *Promotion) ConvertToPromotionResponse() responses.Promotion {
	response := responses.Promotion{
		ID:               p.ID,
		Name:             p.Name,
		Code:             p.Code,
		Type:             p.Type,
		Value:            p.Value,
		MinSubtotalCents: p.MinSubtotalCents,
		Active:           p.Active,
	}
	if p.StartsAt != nil {
		response.StartsAt = p.StartsAt.Format(time.RFC3339)
	}
	if p.EndsAt != nil {
		response.EndsAt = p.EndsAt.Format(time.RFC3339)
	}
	return response
}
