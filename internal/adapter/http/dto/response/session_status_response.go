package response

import "komoju_checkout/internal/usecase"

// SessionStatusResponse is the return-page summary.
type SessionStatusResponse struct {
	Title   string   `json:"title"`
	Details []string `json:"details,omitempty"`
}

func FromSessionStatusSummary(s usecase.SessionStatusSummary) SessionStatusResponse {
	return SessionStatusResponse{Title: s.Title, Details: s.Details}
}

// WebhookAckResponse acknowledges a verified webhook delivery.
type WebhookAckResponse struct {
	Received bool `json:"received"`
}
