package rest

import "github.com/Gunvolt24/wb_tickets/internal/domain"

type quoteRequest struct {
	Tickets []domain.TicketTypeRequest `json:"tickets"`
}

// purchaseRequest - account_id: null или отсутствие поля дают 0 и отказ invalid_account.
type purchaseRequest struct {
	AccountID int64                      `json:"account_id"`
	Tickets   []domain.TicketTypeRequest `json:"tickets"`
}

type purchaseResponse struct {
	AccountID int64 `json:"account_id"`
	Seats     int   `json:"seats"`
	Cost      int   `json:"cost"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
