// File: internal/store/store.go
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate 表示寫入違反唯一鍵約束（例如重複的 username 或 item_name）
var ErrDuplicate = errors.New("duplicate record")

// uniqueViolation PostgreSQL 唯一約束違反的錯誤碼
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
