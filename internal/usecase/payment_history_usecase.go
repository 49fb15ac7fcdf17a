package usecase

import (
	"context"
	"log"
	"sort"

	"komoju_checkout/internal/domain/entities"
	"komoju_checkout/internal/usecase/interfaces"
)

const (
	defaultHistoryPage    = 1
	defaultHistoryPerPage = 20
)

// IPaymentHistoryUseCase serves the paginated payment history page.
type IPaymentHistoryUseCase interface {
	List(ctx context.Context, page, perPage int) (entities.PaymentList, error)
}

type PaymentHistoryUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IPaymentHistoryUseCase = (*PaymentHistoryUseCase)(nil)

func NewPaymentHistoryUseCase(gateway interfaces.IPaymentGateway) *PaymentHistoryUseCase {
	return &PaymentHistoryUseCase{gateway: gateway}
}

// List fetches one page and re-sorts it newest first. The gateway usually
// returns records in that order already, but the ordering is not part of its
// contract, so it is enforced here.
func (u *PaymentHistoryUseCase) List(ctx context.Context, page, perPage int) (entities.PaymentList, error) {
	if page < 1 {
		page = defaultHistoryPage
	}
	if perPage < 1 {
		perPage = defaultHistoryPerPage
	}
	log.Printf("[history][usecase] list start page=%d per_page=%d", page, perPage)

	list, err := u.gateway.ListPayments(ctx, page, perPage)
	if err != nil {
		log.Printf("[history][usecase] list failed page=%d err=%v", page, err)
		return entities.PaymentList{}, err
	}

	sort.SliceStable(list.Payments, func(i, j int) bool {
		return list.Payments[i].CreatedAt.After(list.Payments[j].CreatedAt)
	})
	log.Printf("[history][usecase] list success page=%d count=%d has_more=%t total=%d", page, len(list.Payments), list.HasMore, list.Total)

	return list, nil
}
