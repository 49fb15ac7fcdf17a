package entities

import "time"

// PaymentDetails describes how a payment record was (or will be) settled.
// RedirectURL is only present for methods that hand the payer an external
// page, e.g. konbini receipts.
type PaymentDetails struct {
	Type        string  `json:"type"`
	RedirectURL *string `json:"redirect_url,omitempty"`
}

// Payment is one read-only record from the KOMOJU payment history. The
// external order number is merchant-generated and may be absent for payments
// created outside this service.
type Payment struct {
	ID               string         `json:"id"`
	ExternalOrderNum *string        `json:"external_order_num,omitempty"`
	Amount           int64          `json:"amount"`
	Currency         string         `json:"currency"`
	Status           string         `json:"status"`
	PaymentDetails   PaymentDetails `json:"payment_details"`
	CreatedAt        time.Time      `json:"created_at"`
}

// PaymentList is one page of payment history. HasMore is already coerced to a
// plain bool at the gateway boundary.
type PaymentList struct {
	Payments []Payment `json:"payments"`
	HasMore  bool      `json:"has_more"`
	Total    int64     `json:"total"`
}
