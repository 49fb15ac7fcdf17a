package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"komoju_checkout/internal/domain/entities"
)

const webhookTestSecret = "whsec_test"

func sign(t *testing.T, secret string, body []byte) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookUseCase_Process_Signature(t *testing.T) {
	body := []byte(`{"type":"payment.captured","data":{"id":"pay_1"}}`)

	t.Run("valid signature accepted", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookTestSecret)

		event, err := uc.Process(context.Background(), body, sign(t, webhookTestSecret, body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != entities.WebhookPaymentCaptured {
			t.Fatalf("unexpected event type: %s", event.Type)
		}
	})

	t.Run("missing signature rejected", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookTestSecret)

		_, err := uc.Process(context.Background(), body, "")
		if !errors.Is(err, ErrMissingWebhookSignature) {
			t.Fatalf("expected ErrMissingWebhookSignature, got %v", err)
		}
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookTestSecret)

		signature := sign(t, webhookTestSecret, body)
		tampered := append([]byte(nil), body...)
		tampered[len(tampered)-2] = 'X'

		_, err := uc.Process(context.Background(), tampered, signature)
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("tampered signature rejected", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookTestSecret)

		signature := []byte(sign(t, webhookTestSecret, body))
		if signature[0] == 'a' {
			signature[0] = 'b'
		} else {
			signature[0] = 'a'
		}

		_, err := uc.Process(context.Background(), body, string(signature))
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookTestSecret)

		_, err := uc.Process(context.Background(), body, sign(t, "whsec_other", body))
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})
}

func TestWebhookUseCase_Process_Payload(t *testing.T) {
	t.Run("malformed payload after valid signature", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookTestSecret)
		body := []byte(`{"type":`)

		_, err := uc.Process(context.Background(), body, sign(t, webhookTestSecret, body))
		if !errors.Is(err, ErrMalformedWebhookPayload) {
			t.Fatalf("expected ErrMalformedWebhookPayload, got %v", err)
		}
	})

	t.Run("unknown event type still accepted", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookTestSecret)
		body := []byte(`{"type":"payout.created","data":{}}`)

		event, err := uc.Process(context.Background(), body, sign(t, webhookTestSecret, body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type.Known() {
			t.Fatalf("expected unknown type, got %s", event.Type)
		}
	})
}

func TestWebhookUseCase_Dispatch(t *testing.T) {
	t.Run("registered handler invoked with the event", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookTestSecret)

		var got *entities.WebhookEvent
		uc.Register(entities.WebhookPaymentCaptured, func(_ context.Context, e entities.WebhookEvent) {
			got = &e
		})

		body := []byte(`{"type":"payment.captured","data":{"id":"pay_1"}}`)
		if _, err := uc.Process(context.Background(), body, sign(t, webhookTestSecret, body)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("handler was not invoked")
		}
		if got.Type != entities.WebhookPaymentCaptured {
			t.Fatalf("unexpected event: %+v", got)
		}
	})

	t.Run("handler not invoked on signature failure", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookTestSecret)

		invoked := false
		uc.Register(entities.WebhookPaymentCaptured, func(_ context.Context, _ entities.WebhookEvent) {
			invoked = true
		})

		body := []byte(`{"type":"payment.captured","data":{"id":"pay_1"}}`)
		if _, err := uc.Process(context.Background(), body, "deadbeef"); err == nil {
			t.Fatal("expected signature error")
		}
		if invoked {
			t.Fatal("handler must not run for unverified deliveries")
		}
	})

	t.Run("known type without handler is fine", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookTestSecret)

		body := []byte(`{"type":"payment.refunded","data":{}}`)
		if _, err := uc.Process(context.Background(), body, sign(t, webhookTestSecret, body)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
