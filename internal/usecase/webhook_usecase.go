package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"

	"komoju_checkout/internal/domain/entities"
)

var (
	ErrMissingWebhookSignature = errors.New("missing webhook signature")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrMalformedWebhookPayload = errors.New("malformed webhook payload")
)

// WebhookHandlerFunc reacts to one verified event. Handlers run inline with
// request handling and must not fail the acknowledgment.
type WebhookHandlerFunc func(ctx context.Context, event entities.WebhookEvent)

// IWebhookUseCase verifies and dispatches one inbound gateway notification.
type IWebhookUseCase interface {
	Process(ctx context.Context, rawBody []byte, signature string) (entities.WebhookEvent, error)
}

// WebhookUseCase is a pure verify-and-dispatch boundary: no deduplication, no
// ordering enforcement. The gateway may deliver an event twice or out of
// order; durable reactions belong to the registered handlers' own systems.
type WebhookUseCase struct {
	secret   []byte
	handlers map[entities.WebhookEventType]WebhookHandlerFunc
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(secret string) *WebhookUseCase {
	return &WebhookUseCase{
		secret:   []byte(secret),
		handlers: make(map[entities.WebhookEventType]WebhookHandlerFunc),
	}
}

// Register installs a handler for one event type. Event types without a
// handler are still acknowledged.
func (u *WebhookUseCase) Register(t entities.WebhookEventType, fn WebhookHandlerFunc) {
	u.handlers[t] = fn
}

// Process authenticates rawBody against signature and dispatches the event.
//
// Verification runs over the exact bytes received, before any JSON parsing:
// re-encoding the payload could change its byte layout and break the digest.
// A missing or mismatched signature is rejected before anything is parsed.
func (u *WebhookUseCase) Process(ctx context.Context, rawBody []byte, signature string) (entities.WebhookEvent, error) {
	if signature == "" {
		log.Printf("[webhook][usecase] rejected: missing signature")
		return entities.WebhookEvent{}, ErrMissingWebhookSignature
	}

	mac := hmac.New(sha256.New, u.secret)
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(signature), []byte(expected)) {
		log.Printf("[webhook][usecase] rejected: signature mismatch")
		return entities.WebhookEvent{}, ErrInvalidWebhookSignature
	}

	var event entities.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		log.Printf("[webhook][usecase] rejected: payload decode failed err=%v", err)
		return entities.WebhookEvent{}, ErrMalformedWebhookPayload
	}

	u.dispatch(ctx, event)
	return event, nil
}

// dispatch never fails: unknown types are logged as unhandled so new gateway
// event types keep being acknowledged.
func (u *WebhookUseCase) dispatch(ctx context.Context, event entities.WebhookEvent) {
	if !event.Type.Known() {
		log.Printf("[webhook][usecase] unhandled event type=%s", event.Type)
		return
	}

	log.Printf("[webhook][usecase] payment event type=%s data=%s", event.Type, event.Data)
	if fn, ok := u.handlers[event.Type]; ok {
		fn(ctx, event)
	}
}
