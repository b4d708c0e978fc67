package pricing

import (
	"context"
	"fmt"
	"math"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/internal/ports"
)

// Проверка, что Pricer удовлетворяет интерфейсу OrderPricer.
var _ ports.OrderPricer = (*Pricer)(nil)

// Pricer - проверка правил покупки и расчёт итоговой стоимости и числа мест.
// Состояния нет: одинаковый вход всегда даёт одинаковый результат.
type Pricer struct{}

// NewPricer - конструктор Pricer.
func NewPricer() *Pricer { return &Pricer{} }

// ticketCounts - количество билетов по категориям после суммирования повторов.
type ticketCounts struct {
	adult  int
	child  int
	infant int
	total  int
}

// Price - проверяет заявку и возвращает (места, стоимость).
// Порядок проверок фиксирован, сообщается только первое нарушенное правило:
// отрицательное количество, лимит билетов, наличие взрослого, младенцы <= взрослые, пустой заказ.
func (p *Pricer) Price(_ context.Context, requests []domain.TicketTypeRequest) (domain.OrderSummary, error) {
	counts, err := countTickets(requests)
	if err != nil {
		return domain.OrderSummary{}, err
	}
	if err := checkTotal(counts); err != nil {
		return domain.OrderSummary{}, err
	}
	if err := checkAdultPresent(counts); err != nil {
		return domain.OrderSummary{}, err
	}
	if err := checkInfantRatio(counts); err != nil {
		return domain.OrderSummary{}, err
	}

	summary := domain.OrderSummary{
		Seats: counts.adult + counts.child,
		Cost: counts.adult*domain.AdultTicketPrice +
			counts.child*domain.ChildTicketPrice +
			counts.infant*domain.InfantTicketPrice,
	}
	if summary.Seats == 0 || summary.Cost == 0 {
		return domain.OrderSummary{}, domain.NewPurchaseError(domain.ReasonEmptyOrder,
			"Seats to be reserved or order cost cannot be zero.")
	}
	return summary, nil
}

// countTickets - суммирует количества по категориям. Неизвестные категории не учитываются.
func countTickets(requests []domain.TicketTypeRequest) (ticketCounts, error) {
	var c ticketCounts
	for _, req := range requests {
		if req.Quantity < 0 {
			return ticketCounts{}, domain.NewPurchaseError(domain.ReasonNegativeQuantity,
				"Ticket quantity cannot be negative")
		}

		switch req.Type {
		case domain.TicketTypeAdult:
			c.adult = addSaturating(c.adult, req.Quantity)
		case domain.TicketTypeChild:
			c.child = addSaturating(c.child, req.Quantity)
		case domain.TicketTypeInfant:
			c.infant = addSaturating(c.infant, req.Quantity)
		default:
			continue
		}
		c.total = addSaturating(c.total, req.Quantity)
	}
	return c, nil
}

func checkTotal(c ticketCounts) error {
	if c.total > domain.MaxTicketsPerPurchase {
		return domain.NewPurchaseError(domain.ReasonTooManyTickets, fmt.Sprintf(
			"Total ordered tickets (%d), exceeds maximum allowed (%d).", c.total, domain.MaxTicketsPerPurchase))
	}
	return nil
}

func checkAdultPresent(c ticketCounts) error {
	if (c.child > 0 || c.infant > 0) && c.adult == 0 {
		return domain.NewPurchaseError(domain.ReasonAdultRequired,
			"Cannot purchase child or infant tickets without also purchasing an adult ticket")
	}
	return nil
}

func checkInfantRatio(c ticketCounts) error {
	if c.infant > c.adult {
		return domain.NewPurchaseError(domain.ReasonTooManyInfants,
			"Cannot have more infant tickets than adult tickets")
	}
	return nil
}

// addSaturating - сложение неотрицательных чисел без переполнения.
func addSaturating(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}
