package responses

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	PriceCents  int64    `json:"price_cents"`
	Active      bool     `json:"active"`
	SortOrder   int      `json:"sort_order"`
	Allergens   []string `json:"allergens,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type Promotion struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Code             string `json:"code,omitempty"`
	Type             string `json:"type"`
	Value            int64  `json:"value"`
	MinSubtotalCents int64  `json:"min_subtotal_cents"`
	Active           bool   `json:"active"`
	StartsAt         string `json:"starts_at,omitempty"`
	EndsAt           string `json:"ends_at,omitempty"`
}

type MenuCategory struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

type Menu struct {
	Categories []MenuCategory `json:"categories"`
	Promotions []Promotion    `json:"promotions"`
}

type UploadProductImage struct {
	ProductID  string `json:"product_id"`
	ObjectName string `json:"object_name"`
	ImageURL   string `json:"image_url"`
}
