// Пакет migrations - SQL-миграции журнала оплат и бронирований (goose).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
