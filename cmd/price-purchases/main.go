package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/wb_tickets/internal/pricing"
	"github.com/Gunvolt24/wb_tickets/pkg/validate"
)

// CLI-приложение для офлайн-расчёта заявок на покупку билетов.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	pricer := pricing.NewPricer()

	format := validate.InputFormat(*formatStr)
	path := *inputPath

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(ctx, pricer, path, format, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pricing: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "pricing done (%s)\n", summary)
}
