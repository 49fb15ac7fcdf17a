package payments

import (
	"bytes"
	"encoding/json"
	"time"

	"komoju_checkout/internal/domain/entities"
)

// Wire schemas for the KOMOJU API. Validator tags are the typed contract for
// the gateway boundary: a 2xx reply that fails them is a SchemaValidationError.

type sessionPaymentDTO struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type sessionDTO struct {
	ID         string             `json:"id" validate:"required"`
	SessionURL string             `json:"session_url" validate:"required,url"`
	Status     string             `json:"status" validate:"required"`
	Amount     int64              `json:"amount" validate:"required"`
	Currency   string             `json:"currency" validate:"required"`
	Payment    *sessionPaymentDTO `json:"payment"`
}

func (d sessionDTO) toEntity() entities.PaymentSession {
	s := entities.PaymentSession{
		ID:         d.ID,
		SessionURL: d.SessionURL,
		Status:     entities.SessionStatus(d.Status),
		Amount:     d.Amount,
		Currency:   d.Currency,
	}
	if d.Payment != nil {
		s.Payment = &entities.SessionPayment{ID: d.Payment.ID, Status: d.Payment.Status}
	}
	return s
}

type paymentDetailsDTO struct {
	Type        string  `json:"type" validate:"required"`
	RedirectURL *string `json:"redirect_url"`
}

type paymentDTO struct {
	ID               string            `json:"id" validate:"required"`
	ExternalOrderNum *string           `json:"external_order_num"`
	Amount           int64             `json:"amount"`
	Currency         string            `json:"currency" validate:"required"`
	Status           string            `json:"status" validate:"required"`
	PaymentDetails   paymentDetailsDTO `json:"payment_details"`
	CreatedAt        time.Time         `json:"created_at" validate:"required"`
}

type paymentsResponseDTO struct {
	Data    []paymentDTO `json:"data" validate:"dive"`
	HasMore looseBool    `json:"has_more"`
	Total   int64        `json:"total"`
}

func (d paymentsResponseDTO) toEntity() entities.PaymentList {
	records := make([]entities.Payment, 0, len(d.Data))
	for _, p := range d.Data {
		records = append(records, entities.Payment{
			ID:               p.ID,
			ExternalOrderNum: p.ExternalOrderNum,
			Amount:           p.Amount,
			Currency:         p.Currency,
			Status:           p.Status,
			PaymentDetails: entities.PaymentDetails{
				Type:        p.PaymentDetails.Type,
				RedirectURL: p.PaymentDetails.RedirectURL,
			},
			CreatedAt: p.CreatedAt,
		})
	}
	return entities.PaymentList{Payments: records, HasMore: bool(d.HasMore), Total: d.Total}
}

// looseBool absorbs KOMOJU's inconsistent has_more serialization: sometimes a
// JSON bool, sometimes the strings "true"/"false". Anything unrecognized
// coerces to false rather than failing the whole page.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*b = looseBool(asBool)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*b = looseBool(asString == "true")
		return nil
	}

	*b = false
	return nil
}
