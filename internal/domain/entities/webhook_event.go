package entities

import "encoding/json"

// WebhookEventType enumerates the KOMOJU payment lifecycle notifications we
// know about. The gateway may add new types at any time, so an unknown value
// is valid input: it is dispatched as unhandled, never rejected.
type WebhookEventType string

const (
	WebhookPaymentCreated    WebhookEventType = "payment.created"
	WebhookPaymentAuthorized WebhookEventType = "payment.authorized"
	WebhookPaymentCaptured   WebhookEventType = "payment.captured"
	WebhookPaymentCancelled  WebhookEventType = "payment.cancelled"
	WebhookPaymentRefunded   WebhookEventType = "payment.refunded"
	WebhookPaymentFailed     WebhookEventType = "payment.failed"
)

// Known reports whether the type is part of the enumerated lifecycle set.
func (t WebhookEventType) Known() bool {
	switch t {
	case WebhookPaymentCreated, WebhookPaymentAuthorized, WebhookPaymentCaptured,
		WebhookPaymentCancelled, WebhookPaymentRefunded, WebhookPaymentFailed:
		return true
	}
	return false
}

// WebhookEvent is an inbound gateway notification. It only exists for the
// duration of request handling; Data is kept raw since handlers decide how
// much of it to decode.
type WebhookEvent struct {
	Type WebhookEventType `json:"type"`
	Data json.RawMessage  `json:"data"`
}
