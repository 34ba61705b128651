package responses

type Slots struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
