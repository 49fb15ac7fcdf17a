package handlers

import (
	"errors"
	"log"
	"net/http"

	response "komoju_checkout/internal/adapter/http/dto/response"
	"komoju_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the hex HMAC-SHA256 digest of the raw request body.
const SignatureHeader = "X-Komoju-Signature"

// WebhookHandler receives asynchronous payment notifications from KOMOJU.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Receive verifies and dispatches one webhook delivery.
//
// 401 and 500 are deliberately distinct: 401 means "not from the gateway",
// 500 means "from the gateway but the payload broke during processing".
//
// @Summary      Receive a KOMOJU webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Komoju-Signature  header  string  true  "hex HMAC-SHA256 of the raw body"
// @Success      200  {object}  response.WebhookAckResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /webhooks/komoju [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed"})
		return
	}

	signature := c.GetHeader(SignatureHeader)

	event, err := h.usecase.Process(c.Request.Context(), rawBody, signature)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingWebhookSignature):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing signature"})
		case errors.Is(err, usecase.ErrInvalidWebhookSignature):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed"})
		}
		return
	}
	log.Printf("[webhook][handler] acknowledged type=%s", event.Type)

	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
}
