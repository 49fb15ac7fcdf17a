package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"komoju_checkout/internal/domain/entities"
	"komoju_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

const webhookTestSecret = "whsec_test"

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// The webhook handler is tested against the real verifier: the tamper
// properties only mean something end to end over the exact request bytes.
func newWebhookRouter(uc *usecase.WebhookUseCase) *gin.Engine {
	h := NewWebhookHandler(uc)
	r := gin.New()
	r.POST("/webhooks/komoju", h.Receive)
	return r
}

func postWebhook(r *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/komoju", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := []byte(`{"type":"payment.captured","data":{"id":"pay_1"}}`)

	t.Run("valid delivery acknowledged", func(t *testing.T) {
		r := newWebhookRouter(usecase.NewWebhookUseCase(webhookTestSecret))

		w := postWebhook(r, body, signBody(webhookTestSecret, body))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var ack map[string]bool
		if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
			t.Fatalf("invalid ack body: %s", w.Body.String())
		}
		if !ack["received"] {
			t.Fatalf("expected received=true, got %s", w.Body.String())
		}
	})

	t.Run("missing signature header", func(t *testing.T) {
		r := newWebhookRouter(usecase.NewWebhookUseCase(webhookTestSecret))

		w := postWebhook(r, body, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("tampered signature rejected without dispatch", func(t *testing.T) {
		uc := usecase.NewWebhookUseCase(webhookTestSecret)
		dispatched := false
		uc.Register(entities.WebhookPaymentCaptured, func(_ context.Context, _ entities.WebhookEvent) {
			dispatched = true
		})
		r := newWebhookRouter(uc)

		w := postWebhook(r, body, signBody("whsec_wrong", body))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if dispatched {
			t.Fatal("event dispatched despite invalid signature")
		}
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		r := newWebhookRouter(usecase.NewWebhookUseCase(webhookTestSecret))

		signature := signBody(webhookTestSecret, body)
		tampered := bytes.Replace(body, []byte("pay_1"), []byte("pay_2"), 1)

		w := postWebhook(r, tampered, signature)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed payload after valid signature", func(t *testing.T) {
		r := newWebhookRouter(usecase.NewWebhookUseCase(webhookTestSecret))

		malformed := []byte(`{"type":"payment.captured"`)
		w := postWebhook(r, malformed, signBody(webhookTestSecret, malformed))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("unknown event type still acknowledged", func(t *testing.T) {
		r := newWebhookRouter(usecase.NewWebhookUseCase(webhookTestSecret))

		unknown := []byte(`{"type":"customer.updated","data":{}}`)
		w := postWebhook(r, unknown, signBody(webhookTestSecret, unknown))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("registered handler runs on verified delivery", func(t *testing.T) {
		uc := usecase.NewWebhookUseCase(webhookTestSecret)
		var got entities.WebhookEvent
		uc.Register(entities.WebhookPaymentCaptured, func(_ context.Context, e entities.WebhookEvent) {
			got = e
		})
		r := newWebhookRouter(uc)

		w := postWebhook(r, body, signBody(webhookTestSecret, body))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got.Type != entities.WebhookPaymentCaptured {
			t.Fatalf("handler did not receive the event: %+v", got)
		}
	})
}
