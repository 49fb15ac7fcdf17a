package request

// CheckoutRequest is the checkout form payload. Amount binds strictly as an
// integer, so non-numeric input fails at binding and never reaches the
// gateway; zero is rejected by `required`, negatives by the use case.
type CheckoutRequest struct {
	Amount      int64  `form:"amount" json:"amount" binding:"required"`
	PaymentType string `form:"payment_type" json:"payment_type"`
}
