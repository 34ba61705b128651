package responses

type OpeningPeriod struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type OpeningHours struct {
	Days map[string][]OpeningPeriod `json:"days"`
}

type SlotSettings struct {
	SlotMinutes        int    `json:"slot_minutes"`
	PrepMinutes        int    `json:"prep_minutes"`
	CloseBufferMinutes int    `json:"close_buffer_minutes"`
	Timezone           string `json:"timezone"`
}

type PaymentSettings struct {
	Enabled   bool   `json:"enabled"`
	AccountID string `json:"account_id,omitempty"`
	Currency  string `json:"currency"`
}

type Tenant struct {
	Slug                string       `json:"slug"`
	Name                string       `json:"name"`
	Timezone            string       `json:"timezone"`
	OpeningHours        OpeningHours `json:"opening_hours"`
	SlotSettings        SlotSettings `json:"slot_settings"`
	CardPaymentsEnabled bool         `json:"card_payments_enabled"`
	Currency            string       `json:"currency"`
}

type Business struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Timezone  string `json:"timezone"`
	CreatedAt string `json:"created_at"`
}

type Member struct {
	BusinessID string `json:"business_id"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}
