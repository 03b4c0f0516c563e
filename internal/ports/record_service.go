package ports

import (
	"context"

	"github.com/Gunvolt24/record-store/internal/domain"
)

// RecordService — прикладные операции над каталогом для транспортного слоя.
type RecordService interface {
	Create(ctx context.Context, data domain.RecordData) (*domain.Record, error)
	Update(ctx context.Context, id int64, data domain.RecordData) (*domain.Record, error)
	List(ctx context.Context, q domain.ListQuery) (*domain.RecordPage, error)
}

// OrderPlacer — операция оформления заказа для транспортного слоя.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, recordID int64, quantity int) (*domain.Order, error)
}
