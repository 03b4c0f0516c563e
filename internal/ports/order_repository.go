package ports

import (
	"context"

	"github.com/Gunvolt24/record-store/internal/domain"
)

// OrderRepository — хранилище заказов: только добавление, без бизнес-логики.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
}
