package domain

import (
	"fmt"
	"strings"
)

// Цены за билет (в целых единицах валюты) и лимит билетов на одну покупку.
const (
	AdultTicketPrice  = 20
	ChildTicketPrice  = 10
	InfantTicketPrice = 0

	MaxTicketsPerPurchase = 20
)

// TicketType - категория билета. Набор закрыт: ADULT, CHILD, INFANT.
type TicketType int

const (
	TicketTypeAdult TicketType = iota + 1
	TicketTypeChild
	TicketTypeInfant
)

var ticketTypeNames = map[TicketType]string{
	TicketTypeAdult:  "ADULT",
	TicketTypeChild:  "CHILD",
	TicketTypeInfant: "INFANT",
}

var ticketPrices = map[TicketType]int{
	TicketTypeAdult:  AdultTicketPrice,
	TicketTypeChild:  ChildTicketPrice,
	TicketTypeInfant: InfantTicketPrice,
}

// TicketTypes - все категории в порядке объявления.
func TicketTypes() []TicketType {
	return []TicketType{TicketTypeAdult, TicketTypeChild, TicketTypeInfant}
}

func (t TicketType) String() string {
	if name, ok := ticketTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TicketType(%d)", int(t))
}

// Valid - входит ли значение в закрытый набор категорий.
func (t TicketType) Valid() bool {
	_, ok := ticketTypeNames[t]
	return ok
}

// UnitPrice - цена одного билета категории; для неизвестной категории 0.
func (t TicketType) UnitPrice() int {
	return ticketPrices[t]
}

// OccupiesSeat - младенцы сидят на коленях у взрослых и место не занимают.
func (t TicketType) OccupiesSeat() bool {
	return t == TicketTypeAdult || t == TicketTypeChild
}

// ParseTicketType - разбор категории из строки (без учёта регистра и пробелов по краям).
func ParseTicketType(s string) (TicketType, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	for _, t := range TicketTypes() {
		if ticketTypeNames[t] == norm {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown ticket type %q", ErrMalformedRequest, s)
}

// MarshalText - категория в JSON сериализуется строкой.
func (t TicketType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown ticket type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *TicketType) UnmarshalText(text []byte) error {
	parsed, err := ParseTicketType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TicketTypeRequest - пара (категория, количество). Передаётся по значению.
type TicketTypeRequest struct {
	Type     TicketType `json:"type"`
	Quantity int        `json:"quantity"`
}

// NewTicketTypeRequest - конструктор пары категория/количество.
func NewTicketTypeRequest(t TicketType, quantity int) TicketTypeRequest {
	return TicketTypeRequest{Type: t, Quantity: quantity}
}

// OrderSummary - результат расчёта: сколько мест бронировать и сколько списать.
type OrderSummary struct {
	Seats int `json:"seats"`
	Cost  int `json:"cost"`
}
