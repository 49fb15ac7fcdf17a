package entities

// SessionRequest is the outbound payload for creating a hosted payment
// session. It is built once per checkout submission and never persisted.
//
// PaymentTypes restricts the methods shown on the hosted page; a nil slice
// means "all methods" and the field is omitted from the wire payload entirely
// (an empty list would hide every method).
type SessionRequest struct {
	Amount           int64    `json:"amount" validate:"required,gt=0"`
	Currency         string   `json:"currency" validate:"required"`
	ReturnURL        string   `json:"return_url" validate:"required,url"`
	ExternalOrderNum string   `json:"external_order_num" validate:"required"`
	PaymentTypes     []string `json:"payment_types,omitempty" validate:"omitempty,min=1,dive,required"`
}
