package interfaces

import (
	"context"

	"komoju_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts the KOMOJU REST API.
//
// All durable payment state lives on the gateway side; implementations must
// not cache. Every method is a single network call with no retries.
type IPaymentGateway interface {
	CreateSession(ctx context.Context, req entities.SessionRequest) (entities.PaymentSession, error)
	GetSession(ctx context.Context, id string) (entities.PaymentSession, error)
	ListPayments(ctx context.Context, page, perPage int) (entities.PaymentList, error)
}
