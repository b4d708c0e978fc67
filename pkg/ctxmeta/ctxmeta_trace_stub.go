//go:build !otel || gopls

package ctxmeta

import "context"

// Без тега `otel` логгер не пишет trace_id/span_id, даже если трейсинг включён конфигом.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
