package entities

// SessionStatus represents the lifecycle of a KOMOJU hosted payment session.
//
// Domain notes:
//   - KOMOJU is the source of truth for session state; this service never
//     persists sessions and always re-fetches them by id.
//   - The gateway may introduce new statuses; anything outside the known set
//     is carried through as-is and rendered as "not yet complete".
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// SessionPayment is the payment sub-object nested in a completed session.
type SessionPayment struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// PaymentSession is a KOMOJU hosted checkout instance for one purchase
// attempt. Amount is in the minor currency unit.
type PaymentSession struct {
	ID         string          `json:"id"`
	SessionURL string          `json:"session_url"`
	Status     SessionStatus   `json:"status"`
	Amount     int64           `json:"amount"`
	Currency   string          `json:"currency"`
	Payment    *SessionPayment `json:"payment,omitempty"`
}
