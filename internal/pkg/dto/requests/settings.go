package requests

type OpeningPeriod struct {
	Open  string `json:"open" validate:"required,hhmm"`
	Close string `json:"close" validate:"required,hhmm"`
}

// UpdateOpeningHours is keyed by weekday index, "0" for Sunday to "6" for Saturday.
type UpdateOpeningHours struct {
	Days map[string][]OpeningPeriod `json:"days" validate:"required,dive,keys,oneof=0 1 2 3 4 5 6,endkeys,dive"`
}

type UpdateSlotSettings struct {
	SlotMinutes        int    `json:"slot_minutes" validate:"gte=1,lte=240"`
	PrepMinutes        int    `json:"prep_minutes" validate:"gte=0,lte=1440"`
	CloseBufferMinutes int    `json:"close_buffer_minutes" validate:"gte=0,lte=1440"`
	Timezone           string `json:"timezone" validate:"required,timezone"`
}

type UpdatePaymentSettings struct {
	Enabled   bool   `json:"enabled"`
	AccountID string `json:"account_id" validate:"required_if=Enabled true,max=120"`
	Currency  string `json:"currency" validate:"required,currency"`
}
