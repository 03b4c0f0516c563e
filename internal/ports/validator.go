package ports

import (
	"context"

	"github.com/Gunvolt24/record-store/internal/domain"
)

// RecordValidator — доменная валидация данных записи
// (обязательные поля, закрытые перечни, неотрицательные значения).
type RecordValidator interface {
	Validate(ctx context.Context, data *domain.RecordData) error
}
