package routes

import (
	"komoju_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout       = "/checkout"
	PathPaymentMethods = "/payment-methods"
	PathReturn         = "/return"
	PathPayments       = "/payments"
	PathWebhook        = "/webhooks/komoju"
)

func addStorefrontRoutes(
	r *gin.Engine,
	checkoutHandler *handlers.CheckoutHandler,
	returnHandler *handlers.ReturnHandler,
	historyHandler *handlers.PaymentHistoryHandler,
	webhookHandler *handlers.WebhookHandler,
) {
	r.POST(PathCheckout, checkoutHandler.CreateSession)
	r.GET(PathPaymentMethods, checkoutHandler.ListPaymentMethods)
	r.GET(PathReturn, returnHandler.ResolveStatus)
	r.GET(PathPayments, historyHandler.List)
	r.POST(PathWebhook, webhookHandler.Receive)
}
