package response

import (
	"time"

	"komoju_checkout/internal/domain/entities"
)

type PaymentDetailsResponse struct {
	Type        string  `json:"type"`
	RedirectURL *string `json:"redirect_url,omitempty"`
}

type PaymentResponse struct {
	ID               string                 `json:"id"`
	ExternalOrderNum *string                `json:"external_order_num"`
	Amount           int64                  `json:"amount"`
	Currency         string                 `json:"currency"`
	Status           string                 `json:"status"`
	PaymentDetails   PaymentDetailsResponse `json:"payment_details"`
	CreatedAt        time.Time              `json:"created_at"`
}

// PaymentListResponse mirrors the gateway's history page shape, with has_more
// already normalized to a real bool.
type PaymentListResponse struct {
	Data    []PaymentResponse `json:"data"`
	HasMore bool              `json:"has_more"`
	Total   int64             `json:"total"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		ExternalOrderNum: p.ExternalOrderNum,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Status:           p.Status,
		PaymentDetails: PaymentDetailsResponse{
			Type:        p.PaymentDetails.Type,
			RedirectURL: p.PaymentDetails.RedirectURL,
		},
		CreatedAt: p.CreatedAt,
	}
}

func FromPaymentList(list entities.PaymentList) PaymentListResponse {
	data := make([]PaymentResponse, 0, len(list.Payments))
	for _, p := range list.Payments {
		data = append(data, FromPayment(p))
	}
	return PaymentListResponse{Data: data, HasMore: list.HasMore, Total: list.Total}
}
