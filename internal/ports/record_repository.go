package ports

import (
	"context"

	"github.com/Gunvolt24/record-store/internal/domain"
)

// RecordRepository — хранилище записей каталога.
// Методы уважают транзакцию из контекста (см. TxManager).
type RecordRepository interface {
	// Create — вставка новой записи; domain.ErrDuplicateRecord при
	// нарушении уникальности (artist, album, format).
	Create(ctx context.Context, data domain.RecordData) (*domain.Record, error)

	// GetByID — запись по id; domain.ErrRecordNotFound, если её нет.
	GetByID(ctx context.Context, id int64) (*domain.Record, error)

	// Update — обновление полей записи; domain.ErrRecordNotFound, если её нет.
	Update(ctx context.Context, id int64, data domain.RecordData) (*domain.Record, error)

	// ListFiltered — до limit записей, удовлетворяющих фильтру,
	// с id строго больше cursor, по возрастанию id.
	ListFiltered(ctx context.Context, filter domain.RecordFilter, limit int, cursor int64) ([]*domain.Record, error)

	// DeductStock — единственная операция, требующая настоящей атомарности:
	// одно условное списание qty -= quantity при qty >= quantity.
	// domain.ErrInsufficientStock — если условие не выполнено
	// (в том числе когда записи нет).
	DeductStock(ctx context.Context, id int64, quantity int) (*domain.Record, error)
}
