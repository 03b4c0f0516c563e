package httpx

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Границы limit для списочных эндпоинтов.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Ошибки разбора query-параметров пагинации.
var (
	ErrBadLimit  = errors.New("limit must be a positive integer")
	ErrBadCursor = errors.New("cursor must be a valid record id")
)

// ClampInt — ограничение значения v диапазоном [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseLimit — читает limit из query.
// Отсутствие → DefaultLimit; нечисловое или < 1 → ErrBadLimit;
// значение сверх MaxLimit обрезается.
func ParseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return DefaultLimit, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, ErrBadLimit
	}
	return ClampInt(v, 1, MaxLimit), nil
}

// ParseCursor — читает курсор (id последней записи предыдущей страницы).
// Отсутствие → 0 (первая страница); мусор → ErrBadCursor.
func ParseCursor(c *gin.Context) (int64, error) {
	raw := c.Query("cursor")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, ErrBadCursor
	}
	return v, nil
}
