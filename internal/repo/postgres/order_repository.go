package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/record-store/internal/domain"
	"github.com/Gunvolt24/record-store/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу порта.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — хранилище заказов: чистый append без бизнес-логики.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create — вставка заказа; уважает транзакцию из контекста,
// поэтому внутри координатора заказ и списание фиксируются вместе.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	err := queryEngine(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO orders (id, record_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, order.ID, order.RecordID, order.Quantity).Scan(&order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}
