package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/wb_tickets/internal/ports"
)

// Summary - статистика обработки входа.
type Summary struct {
	Valid   int
	Invalid int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

// ValidateJSONLStream - читает JSONL из reader'а, рассчитывает каждую заявку, валидные пишет в writer
// каноническим JSON одной строкой. Пустые строки пропускаются.
// Причины отбраковки пишутся в rejects, если он не nil.
func ValidateJSONLStream(
	ctx context.Context,
	pricer ports.OrderPricer,
	ir io.Reader,
	ow io.Writer,
	rejects io.Writer,
) (Summary, error) {
	var res Summary

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		line, err := ValidatePurchaseFromJSON(ctx, pricer, lineBytes)
		if err != nil {
			res.Invalid++
			if rejects != nil {
				fmt.Fprintf(rejects, "line %d: %s\n", lineNo, describe(err))
			}
			continue
		}

		if err := writeLine(ow, line); err != nil {
			return res, err
		}
		res.Valid++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

func writeLine(ow io.Writer, line QuoteLine) error {
	canonical, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}
	if _, err := ow.Write(append(canonical, '\n')); err != nil {
		return fmt.Errorf("write quote: %w", err)
	}
	return nil
}
