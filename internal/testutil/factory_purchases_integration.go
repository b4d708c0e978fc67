//go:build integration

package testutil

import (
	"encoding/json"
	"math/rand"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/google/uuid"
)

func NewRequestID() string { return uuid.NewString() }

// NewAccountID - случайный положительный id, чтобы тесты не пересекались по аккаунтам.
func NewAccountID() int64 { return rand.Int63n(1<<40) + 1 }

// MakePurchase - валидная заявка: 2 взрослых, 1 детский, 1 младенец (3 места, 50).
func MakePurchase(opts ...func(*domain.PurchaseRequest)) domain.PurchaseRequest {
	p := domain.PurchaseRequest{
		RequestID: NewRequestID(),
		AccountID: NewAccountID(),
		Tickets: []domain.TicketTypeRequest{
			domain.NewTicketTypeRequest(domain.TicketTypeAdult, 2),
			domain.NewTicketTypeRequest(domain.TicketTypeChild, 1),
			domain.NewTicketTypeRequest(domain.TicketTypeInfant, 1),
		},
	}
	for _, fn := range opts {
		fn(&p)
	}
	return p
}

func WithAccount(id int64) func(*domain.PurchaseRequest) {
	return func(p *domain.PurchaseRequest) { p.AccountID = id }
}

func WithRequestID(id string) func(*domain.PurchaseRequest) {
	return func(p *domain.PurchaseRequest) { p.RequestID = id }
}

func WithTickets(reqs ...domain.TicketTypeRequest) func(*domain.PurchaseRequest) {
	return func(p *domain.PurchaseRequest) { p.Tickets = reqs }
}

// MustJSON - сериализация заявки для Kafka/HTTP.
func MustJSON(v any) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
