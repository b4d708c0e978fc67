package validate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/internal/pricing"
)

func TestValidatePurchaseFromJSON_OK(t *testing.T) {
	ctx := context.Background()

	line, err := ValidatePurchaseFromJSON(ctx, pricing.NewPricer(), []byte(purchaseJSON("r-1", 12345)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := QuoteLine{RequestID: "r-1", AccountID: 12345, Seats: 3, Cost: 50}
	if line != want {
		t.Fatalf("want %+v, got %+v", want, line)
	}
}

func TestValidatePurchaseFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()

	raw := `{"unknown":"x",` + purchaseJSON("r-2", 1)[1:]
	_, err := ValidatePurchaseFromJSON(ctx, pricing.NewPricer(), []byte(raw))
	if !errors.Is(err, domain.ErrMalformedRequest) || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
}

func TestValidatePurchaseFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()

	raw := purchaseJSON("r-3", 1) + "{}"
	_, err := ValidatePurchaseFromJSON(ctx, pricing.NewPricer(), []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidatePurchaseFromJSON_UnknownTicketType(t *testing.T) {
	ctx := context.Background()

	raw := `{"account_id":1,"tickets":[{"type":"SENIOR","quantity":1}]}`
	_, err := ValidatePurchaseFromJSON(ctx, pricing.NewPricer(), []byte(raw))
	if !errors.Is(err, domain.ErrMalformedRequest) {
		t.Fatalf("expected malformed request, got: %v", err)
	}
}

func TestValidatePurchaseFromJSON_Rejected(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		raw  string
		want domain.Reason
	}{
		{"missing account", `{"tickets":[{"type":"ADULT","quantity":1}]}`, domain.ReasonInvalidAccount},
		{"zero account", purchaseJSON("", 0), domain.ReasonInvalidAccount},
		{"no adult", `{"account_id":1,"tickets":[{"type":"CHILD","quantity":1}]}`, domain.ReasonAdultRequired},
		{"too many", `{"account_id":1,"tickets":[{"type":"ADULT","quantity":21}]}`, domain.ReasonTooManyTickets},
		{"empty", `{"account_id":1,"tickets":[]}`, domain.ReasonEmptyOrder},
		{"negative", `{"account_id":1,"tickets":[{"type":"ADULT","quantity":-1}]}`, domain.ReasonNegativeQuantity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidatePurchaseFromJSON(ctx, pricing.NewPricer(), []byte(tc.raw))
			reason, ok := domain.ReasonOf(err)
			if !ok || reason != tc.want {
				t.Fatalf("want reason %s, got %v", tc.want, err)
			}
		})
	}
}

// ---- helpers ----

// purchaseJSON - 2 ADULT + 1 CHILD + 1 INFANT: 3 места, 50 к оплате.
func purchaseJSON(requestID string, accountID int64) string {
	return `{
  "request_id": "` + requestID + `",
  "account_id": ` + itoa(accountID) + `,
  "tickets": [
    {"type": "ADULT", "quantity": 2},
    {"type": "CHILD", "quantity": 1},
    {"type": "INFANT", "quantity": 1}
  ]
}`
}
