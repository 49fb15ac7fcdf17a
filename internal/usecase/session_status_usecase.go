package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"komoju_checkout/internal/domain/entities"
	"komoju_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidSessionID         = errors.New("invalid session id")
	ErrSessionStatusUnavailable = errors.New("session status unavailable")
)

// SessionStatusSummary is the user-facing rendering of a session snapshot.
// Details never contain gateway internals.
type SessionStatusSummary struct {
	Title   string   `json:"title"`
	Details []string `json:"details,omitempty"`
}

// ISessionStatusUseCase resolves the return-page status for one session.
type ISessionStatusUseCase interface {
	ResolveStatus(ctx context.Context, sessionID string) (SessionStatusSummary, error)
}

type SessionStatusUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ ISessionStatusUseCase = (*SessionStatusUseCase)(nil)

func NewSessionStatusUseCase(gateway interfaces.IPaymentGateway) *SessionStatusUseCase {
	return &SessionStatusUseCase{gateway: gateway}
}

// ResolveStatus fetches the session once and maps its status to a summary.
// Any fetch failure collapses to ErrSessionStatusUnavailable; the cause is
// logged here and never surfaced to the end user.
func (u *SessionStatusUseCase) ResolveStatus(ctx context.Context, sessionID string) (SessionStatusSummary, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SessionStatusSummary{}, ErrInvalidSessionID
	}
	log.Printf("[return][usecase] resolve start session_id=%s", sessionID)

	session, err := u.gateway.GetSession(ctx, sessionID)
	if err != nil {
		log.Printf("[return][usecase] session fetch failed session_id=%s err=%v", sessionID, err)
		return SessionStatusSummary{}, ErrSessionStatusUnavailable
	}
	log.Printf("[return][usecase] resolve success session_id=%s status=%s", sessionID, session.Status)

	return summarizeSession(session), nil
}

// summarizeSession is a pure mapping over one session snapshot.
func summarizeSession(session entities.PaymentSession) SessionStatusSummary {
	if session.Status == entities.SessionStatusCompleted && session.Payment != nil {
		return SessionStatusSummary{
			Title: "決済が完了しました。ありがとうございます",
			Details: []string{
				fmt.Sprintf("金額: %d %s", session.Amount, session.Currency),
				fmt.Sprintf("支払いステータス: %s", session.Payment.Status),
			},
		}
	}

	if session.Status == entities.SessionStatusCancelled {
		return SessionStatusSummary{Title: "支払いがキャンセルされました"}
	}

	return SessionStatusSummary{
		Title: fmt.Sprintf("支払いはまだ完了していません（status: %s）", session.Status),
	}
}
