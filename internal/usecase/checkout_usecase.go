package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"komoju_checkout/internal/domain/entities"
	"komoju_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// All sessions are created in JPY, the minor unit being one yen.
const checkoutCurrency = "JPY"

var (
	ErrInvalidAmount        = errors.New("amount must be a positive integer")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// ICheckoutUseCase turns one validated form submission into a hosted payment
// session and yields the URL the caller must be redirected to.
type ICheckoutUseCase interface {
	CreateSession(ctx context.Context, amount int64, paymentType string) (string, error)
}

type CheckoutUseCase struct {
	gateway interfaces.IPaymentGateway
	baseURL string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.IPaymentGateway, baseURL string) *CheckoutUseCase {
	return &CheckoutUseCase{gateway: gateway, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// CreateSession validates the input, builds the session request and calls the
// gateway. No network call happens for invalid input.
func (u *CheckoutUseCase) CreateSession(ctx context.Context, amount int64, paymentType string) (string, error) {
	log.Printf("[checkout][usecase] create start amount=%d payment_type=%q", amount, paymentType)

	if amount <= 0 {
		log.Printf("[checkout][usecase] rejected non-positive amount=%d", amount)
		return "", ErrInvalidAmount
	}

	paymentTypes, err := resolvePaymentTypes(paymentType)
	if err != nil {
		log.Printf("[checkout][usecase] rejected payment_type=%q", paymentType)
		return "", err
	}

	req := entities.SessionRequest{
		Amount:           amount,
		Currency:         checkoutCurrency,
		ReturnURL:        u.baseURL + "/return",
		ExternalOrderNum: newExternalOrderNum(),
		PaymentTypes:     paymentTypes,
	}

	session, err := u.gateway.CreateSession(ctx, req)
	if err != nil {
		log.Printf("[checkout][usecase] gateway create failed external_order_num=%s err=%v", req.ExternalOrderNum, err)
		return "", err
	}
	log.Printf("[checkout][usecase] create success session_id=%s external_order_num=%s", session.ID, req.ExternalOrderNum)

	return session.SessionURL, nil
}

// resolvePaymentTypes maps the selected method to the payment_types
// restriction. Empty selection and the "all" sentinel both mean no
// restriction: the field stays nil so it is omitted on the wire.
func resolvePaymentTypes(paymentType string) ([]string, error) {
	paymentType = strings.TrimSpace(paymentType)
	if paymentType == "" || paymentType == entities.PaymentMethodAll {
		return nil, nil
	}
	if !entities.IsSupportedPaymentMethod(paymentType) {
		return nil, ErrInvalidPaymentMethod
	}
	return []string{paymentType}, nil
}

// newExternalOrderNum generates a merchant-side order number. The epoch
// prefix keeps it human-sortable; the uuid fragment keeps two submissions in
// the same millisecond distinct.
func newExternalOrderNum() string {
	return fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
