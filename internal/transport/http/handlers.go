package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) quoteTickets(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	summary, err := h.service.QuoteTickets(ctx, req.Tickets)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) purchaseTickets(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	summary, err := h.service.PurchaseTickets(ctx, req.AccountID, req.Tickets)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchaseResponse{
		AccountID: req.AccountID,
		Seats:     summary.Seats,
		Cost:      summary.Cost,
	})
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	h.log.Warnf(c.Request.Context(), "malformed request path=%s err=%v", c.FullPath(), err)
	c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request: " + err.Error()})
}

// writeError - отказ в покупке -> 422, битые данные -> 400, таймаут -> 504,
// сбой оплаты/бронирования -> 502.
func (h *Handler) writeError(c *gin.Context, err error) {
	var pe *domain.PurchaseError
	switch {
	case errors.As(err, &pe):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: pe.Message, Reason: string(pe.Reason)})
	case errors.Is(err, domain.ErrMalformedRequest):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Errorf(c.Request.Context(), "request timed out path=%s err=%v", c.FullPath(), err)
		c.JSON(http.StatusGatewayTimeout, errorResponse{Error: "timeout"})
	default:
		h.log.Errorf(c.Request.Context(), "purchase failed path=%s err=%v", c.FullPath(), err)
		c.JSON(http.StatusBadGateway, errorResponse{Error: "payment or reservation failed"})
	}
}
