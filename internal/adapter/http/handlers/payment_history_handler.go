package handlers

import (
	"log"
	"net/http"
	"strconv"

	response "komoju_checkout/internal/adapter/http/dto/response"
	"komoju_checkout/internal/usecase"
	"komoju_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var errPaymentHistoryFetch = pkg.NewDomainErrorSimple("PAYMENT_HISTORY_UNAVAILABLE", "決済履歴の取得中にエラーが発生しました", http.StatusBadGateway)

// PaymentHistoryHandler serves the paginated payment history.
type PaymentHistoryHandler struct {
	usecase usecase.IPaymentHistoryUseCase
}

func NewPaymentHistoryHandler(uc usecase.IPaymentHistoryUseCase) *PaymentHistoryHandler {
	return &PaymentHistoryHandler{usecase: uc}
}

// List returns one page of payment records, newest first.
//
// @Summary      List payment history
// @Tags         payments
// @Produce      json
// @Param        page      query  integer  false  "Page number (default 1)"
// @Param        per_page  query  integer  false  "Page size (default 20)"
// @Success      200  {object}  response.PaymentListResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payments [get]
func (h *PaymentHistoryHandler) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", 20)
	log.Printf("[history][handler] list start page=%d per_page=%d", page, perPage)

	list, err := h.usecase.List(c.Request.Context(), page, perPage)
	if err != nil {
		log.Printf("[history][handler] list failed page=%d err=%v", page, err)
		c.JSON(errPaymentHistoryFetch.HTTPStatus, errPaymentHistoryFetch.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentList(list))
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
