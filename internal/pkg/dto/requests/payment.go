package requests

// PaymentWebhookEvent is the subset of a gateway event the service reads.
type PaymentWebhookEvent struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object PaymentWebhookObject `json:"object"`
	} `json:"data"`
}

type PaymentWebhookObject struct {
	ID                string            `json:"id"`
	ClientReferenceID string            `json:"client_reference_id"`
	Metadata          map[string]string `json:"metadata"`
}

// OrderID prefers the metadata set at checkout creation.
func (o PaymentWebhookObject) OrderID() string {
	if orderID := o.Metadata["order_id"]; orderID != "" {
		return orderID
	}
	return o.ClientReferenceID
}
