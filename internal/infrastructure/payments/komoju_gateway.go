package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"komoju_checkout/internal/config"
	"komoju_checkout/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var ErrMissingKomojuSecretKey = errors.New("missing KOMOJU_SECRET_KEY")

// GatewayRequestError is a non-success HTTP status from KOMOJU. The raw body
// is kept for server-side diagnostics and must never reach end users.
type GatewayRequestError struct {
	StatusCode int
	Body       string
}

func (e *GatewayRequestError) Error() string {
	return fmt.Sprintf("komoju request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// SchemaValidationError means KOMOJU answered 2xx but the payload did not
// match the expected shape.
type SchemaValidationError struct {
	Reason error
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("komoju response schema mismatch: %v", e.Reason)
}

func (e *SchemaValidationError) Unwrap() error { return e.Reason }

// KomojuGateway is a thin client for the KOMOJU REST API. Every call is a
// fresh network round trip: session state changes asynchronously via
// webhooks, so nothing is cached. Failures propagate immediately; retry
// policy is deliberately left to the caller.
type KomojuGateway struct {
	hc        *http.Client
	baseURL   string
	secretKey string
	validate  *validator.Validate
}

// NewKomojuGateway fails fast when the secret is absent so that no
// unauthenticated call can ever be made.
func NewKomojuGateway(cfg *config.Config) (*KomojuGateway, error) {
	if cfg == nil || cfg.KomojuSecretKey == "" {
		log.Printf("[gateway][komoju] missing KOMOJU_SECRET_KEY")
		return nil, ErrMissingKomojuSecretKey
	}

	return &KomojuGateway{
		hc:        &http.Client{Timeout: 30 * time.Second},
		baseURL:   cfg.KomojuBaseURL,
		secretKey: cfg.KomojuSecretKey,
		validate:  validator.New(),
	}, nil
}

// CreateSession validates the request shape, posts it to /sessions and
// validates the response against the session schema.
func (g *KomojuGateway) CreateSession(ctx context.Context, req entities.SessionRequest) (entities.PaymentSession, error) {
	log.Printf("[gateway][komoju] create session start external_order_num=%s amount=%d %s", req.ExternalOrderNum, req.Amount, req.Currency)

	if err := g.validate.Struct(req); err != nil {
		log.Printf("[gateway][komoju] invalid session request err=%v", err)
		return entities.PaymentSession{}, &SchemaValidationError{Reason: err}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return entities.PaymentSession{}, err
	}

	var dto sessionDTO
	if err := g.do(ctx, http.MethodPost, "/sessions", bytes.NewReader(body), &dto); err != nil {
		return entities.PaymentSession{}, err
	}
	log.Printf("[gateway][komoju] create session success session_id=%s status=%s", dto.ID, dto.Status)

	return dto.toEntity(), nil
}

// GetSession fetches the current state of one session. It always reflects
// the gateway's latest view; status can flip between two reads.
func (g *KomojuGateway) GetSession(ctx context.Context, id string) (entities.PaymentSession, error) {
	log.Printf("[gateway][komoju] get session start session_id=%s", id)

	var dto sessionDTO
	if err := g.do(ctx, http.MethodGet, "/sessions/"+url.PathEscape(id), nil, &dto); err != nil {
		return entities.PaymentSession{}, err
	}
	log.Printf("[gateway][komoju] get session success session_id=%s status=%s", dto.ID, dto.Status)

	return dto.toEntity(), nil
}

// ListPayments fetches one page of the payment history.
func (g *KomojuGateway) ListPayments(ctx context.Context, page, perPage int) (entities.PaymentList, error) {
	log.Printf("[gateway][komoju] list payments start page=%d per_page=%d", page, perPage)

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var dto paymentsResponseDTO
	if err := g.do(ctx, http.MethodGet, "/payments?"+q.Encode(), nil, &dto); err != nil {
		return entities.PaymentList{}, err
	}
	log.Printf("[gateway][komoju] list payments success count=%d has_more=%t total=%d", len(dto.Data), bool(dto.HasMore), dto.Total)

	return dto.toEntity(), nil
}

// do runs one authenticated round trip and decodes+validates the reply into
// out. Basic auth is base64(secretKey:) with an empty password, the KOMOJU
// convention.
func (g *KomojuGateway) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(g.secretKey, "")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.hc.Do(req)
	if err != nil {
		log.Printf("[gateway][komoju] request failed method=%s path=%s err=%v", method, path, err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("[gateway][komoju] non-success reply method=%s path=%s status=%d body=%s", method, path, resp.StatusCode, raw)
		return &GatewayRequestError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[gateway][komoju] reply decode failed method=%s path=%s err=%v", method, path, err)
		return &SchemaValidationError{Reason: err}
	}
	if err := g.validate.Struct(out); err != nil {
		log.Printf("[gateway][komoju] reply schema mismatch method=%s path=%s err=%v", method, path, err)
		return &SchemaValidationError{Reason: err}
	}
	return nil
}
