package requests

type UpsertProduct struct {
	Name        string   `json:"name" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=1000"`
	Category    string   `json:"category" validate:"required,max=60"`
	PriceCents  int64    `json:"price_cents" validate:"gte=0"`
	Active      bool     `json:"active"`
	SortOrder   int      `json:"sort_order" validate:"gte=0"`
	Allergens   []string `json:"allergens" validate:"max=20,dive,max=40"`
}

type UploadProductImage struct {
	ProductID   string
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}
