package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/wb_tickets/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ResolveFormat - для auto выбирает формат по расширению (по умолчанию JSON).
func ResolveFormat(format InputFormat, filePath string) InputFormat {
	if format != FormatAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile - рассчитывает заявки из файла (JSON - одна заявка, JSONL - по заявке в строке)
// и пишет канонические строки в ow. Невалидные заявки только учитываются в Summary;
// ошибка возвращается при проблемах ввода-вывода и неизвестном формате.
func ValidateFile(
	ctx context.Context,
	pricer ports.OrderPricer,
	filePath string,
	format InputFormat,
	ow io.Writer,
	rejects io.Writer,
) (Summary, error) {
	format = ResolveFormat(format, filePath)
	if format != FormatJSON && format != FormatJSONL {
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if format == FormatJSONL {
		return ValidateJSONLStream(ctx, pricer, file, ow, rejects)
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return Summary{}, fmt.Errorf("read file: %w", err)
	}
	line, err := ValidatePurchaseFromJSON(ctx, pricer, raw)
	if err != nil {
		if rejects != nil {
			fmt.Fprintf(rejects, "%s: %s\n", filePath, describe(err))
		}
		return Summary{Invalid: 1}, nil
	}
	if err := writeLine(ow, line); err != nil {
		return Summary{}, err
	}
	return Summary{Valid: 1}, nil
}
