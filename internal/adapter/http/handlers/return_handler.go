package handlers

import (
	"errors"
	"log"
	"net/http"

	response "komoju_checkout/internal/adapter/http/dto/response"
	"komoju_checkout/internal/usecase"
	"komoju_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingSessionID = pkg.NewDomainErrorSimple("MISSING_SESSION_ID", "セッションIDが見つかりません", http.StatusBadRequest)
	errSessionFetch     = pkg.NewDomainErrorSimple("SESSION_STATUS_UNAVAILABLE", "セッション情報の取得に失敗しました", http.StatusBadGateway)
)

// ReturnHandler resolves the status shown when the payer comes back from the
// hosted payment page.
type ReturnHandler struct {
	usecase usecase.ISessionStatusUseCase
}

func NewReturnHandler(uc usecase.ISessionStatusUseCase) *ReturnHandler {
	return &ReturnHandler{usecase: uc}
}

// ResolveStatus renders the return-page summary for one session.
//
// @Summary      Resolve return-page session status
// @Tags         return
// @Produce      json
// @Param        session_id  query  string  true  "Session identifier passed back by the gateway"
// @Success      200  {object}  response.SessionStatusResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /return [get]
func (h *ReturnHandler) ResolveStatus(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		// The gateway normally appends session_id; a bare visit is a user
		// error state, not a server fault.
		c.JSON(errMissingSessionID.HTTPStatus, errMissingSessionID.ToHTTPError())
		return
	}
	log.Printf("[return][handler] resolve start session_id=%s", sessionID)

	summary, err := h.usecase.ResolveStatus(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[return][handler] resolve failed session_id=%s err=%v", sessionID, err)
		if errors.Is(err, usecase.ErrInvalidSessionID) {
			c.JSON(errMissingSessionID.HTTPStatus, errMissingSessionID.ToHTTPError())
			return
		}
		c.JSON(errSessionFetch.HTTPStatus, errSessionFetch.ToHTTPError())
		return
	}
	log.Printf("[return][handler] resolve success session_id=%s title=%s", sessionID, summary.Title)

	c.JSON(http.StatusOK, response.FromSessionStatusSummary(summary))
}
