package ports

import "context"

// Logger - минимальный контракт логгера для внешних слоёв.
// Метаданные запроса (request_id, account_id) реализация достаёт из ctx.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)  // Infof - информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf - предупреждения.
	Errorf(ctx context.Context, format string, args ...any) // Errorf - ошибки.
}
