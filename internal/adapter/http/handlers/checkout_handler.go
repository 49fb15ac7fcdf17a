package handlers

import (
	"errors"
	"log"
	"net/http"

	request "komoju_checkout/internal/adapter/http/dto/request"
	"komoju_checkout/internal/domain/entities"
	"komoju_checkout/internal/usecase"
	"komoju_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutInput = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "金額は正の整数である必要があります", http.StatusBadRequest)
	errInvalidPaymentMethod = pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "無効な決済方法が選択されました", http.StatusBadRequest)
)

// CheckoutHandler handles the checkout form submission.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateSession creates a hosted payment session and redirects to it.
//
// @Summary      Create a hosted payment session
// @Description  Validates the checkout form, creates a KOMOJU session and redirects to its hosted page.
// @Tags         checkout
// @Accept       x-www-form-urlencoded
// @Param        amount        formData  integer  true   "Amount in the minor currency unit"
// @Param        payment_type  formData  string   false  "Payment method value, or 'all'"
// @Success      303
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /checkout [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBind(&payload); err != nil {
		log.Printf("[checkout][handler] invalid form err=%v", err)
		c.JSON(errInvalidCheckoutInput.HTTPStatus, errInvalidCheckoutInput.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create start amount=%d payment_type=%q", payload.Amount, payload.PaymentType)

	sessionURL, err := h.usecase.CreateSession(c.Request.Context(), payload.Amount, payload.PaymentType)
	if err != nil {
		log.Printf("[checkout][handler] create failed amount=%d err=%v", payload.Amount, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success redirect=%s", sessionURL)

	c.Redirect(http.StatusSeeOther, sessionURL)
}

// ListPaymentMethods returns the selectable payment methods for the form.
//
// @Summary  List selectable payment methods
// @Tags     checkout
// @Produce  json
// @Success  200  {array}  entities.PaymentMethod
// @Router   /payment-methods [get]
func (h *CheckoutHandler) ListPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, entities.PaymentMethods)
}

// mapCheckoutError keeps validation failures user-correctable and collapses
// everything else to a generic server error without gateway internals.
func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return errInvalidCheckoutInput
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return errInvalidPaymentMethod
	default:
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "サーバーエラーが発生しました", err, http.StatusBadGateway)
	}
}
