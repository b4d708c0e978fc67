package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/Gunvolt24/wb_tickets/internal/pricing"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()

	line1 := oneLineJSON(purchaseJSON("r-1", 1))
	// без взрослого
	line2 := `{"account_id":2,"tickets":[{"type":"INFANT","quantity":1}]}`
	line3 := "" // пустая строка - ок
	line4 := oneLineJSON(purchaseJSON("r-3", 3))

	input := strings.Join([]string{line1, line2, line3, line4}, "\n")
	var out, rejects bytes.Buffer

	res, err := ValidateJSONLStream(ctx, pricing.NewPricer(), strings.NewReader(input), &out, &rejects)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid != 2 || res.Invalid != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if res.String() != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", res)
	}

	outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(outLines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(outLines))
	}
	var q1, q2 QuoteLine
	if err := json.Unmarshal([]byte(outLines[0]), &q1); err != nil {
		t.Fatalf("unmarshal line1: %v", err)
	}
	if err := json.Unmarshal([]byte(outLines[1]), &q2); err != nil {
		t.Fatalf("unmarshal line2: %v", err)
	}
	if q1.AccountID != 1 || q2.AccountID != 3 {
		t.Fatalf("unexpected accounts in output: %d, %d", q1.AccountID, q2.AccountID)
	}

	if !strings.Contains(rejects.String(), "line 2: adult_required") {
		t.Fatalf("unexpected rejects: %q", rejects.String())
	}
}

func TestValidateJSONLStream_CanonicalLine(t *testing.T) {
	ctx := context.Background()

	var out bytes.Buffer
	_, err := ValidateJSONLStream(ctx, pricing.NewPricer(), strings.NewReader(purchaseJSONLine("r-9", 7)), &out, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"request_id":"r-9","account_id":7,"seats":3,"cost":50}` + "\n"
	if out.String() != want {
		t.Fatalf("want %q, got %q", want, out.String())
	}
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	ctx := context.Background()

	pad := strings.Repeat(" ", 200_000) // > 64KB
	raw := `{"request_id":"r-big",` + pad + `"account_id":1,"tickets":[{"type":"ADULT","quantity":1}]}`

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, pricing.NewPricer(), strings.NewReader(raw), &out, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid != 1 || res.Invalid != 0 {
		t.Fatalf("unexpected counters: %+v", res)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestValidateJSONLStream_WriteError(t *testing.T) {
	ctx := context.Background()

	_, err := ValidateJSONLStream(ctx, pricing.NewPricer(), strings.NewReader(purchaseJSONLine("r-1", 1)), failingWriter{}, nil)
	if err == nil || !strings.Contains(err.Error(), "write quote") {
		t.Fatalf("expected write error, got: %v", err)
	}
}

func purchaseJSONLine(requestID string, accountID int64) string {
	return oneLineJSON(purchaseJSON(requestID, accountID))
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }
