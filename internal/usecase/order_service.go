package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Gunvolt24/record-store/internal/domain"
	"github.com/Gunvolt24/record-store/internal/ports"
	"github.com/Gunvolt24/record-store/pkg/metrics"
)

// Проверка, что OrderService удовлетворяет интерфейсу порта.
var _ ports.OrderPlacer = (*OrderService)(nil)

// txStage — явные состояния оформления заказа; каждый переход
// логируется, чтобы побочные эффекты любого пути выхода были видны.
type txStage string

const (
	stageStarted       txStage = "started"
	stageStockChecked  txStage = "stock_checked"
	stageStockDeducted txStage = "stock_deducted"
	stageOrderRecorded txStage = "order_recorded"
)

// OrderService — координатор заказа: компонует хранилища записей и
// заказов в одну атомарную операцию «списать остаток, зафиксировать
// заказ» внутри транзакции.
type OrderService struct {
	tx      ports.TxManager
	records ports.RecordRepository
	orders  ports.OrderRepository
	log     ports.Logger
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	tx ports.TxManager,
	records ports.RecordRepository,
	orders ports.OrderRepository,
	log ports.Logger,
) *OrderService {
	return &OrderService{
		tx:      tx,
		records: records,
		orders:  orders,
		log:     log,
	}
}

// PlaceOrder — оформить заказ на запись каталога.
// Шаги внутри одной транзакции:
//  1. поиск записи (нет → ErrRecordNotFound, откат);
//  2. условное списание остатка (мало → ErrInsufficientStock, откат);
//  3. вставка заказа; любая ошибка → откат с исходной причиной.
// Заказ и списание становятся видимыми атомарно: внешний читатель
// не увидит одно без другого. Кэш списков в заказе не участвует.
func (s *OrderService) PlaceOrder(ctx context.Context, recordID int64, quantity int) (*domain.Order, error) {
	var order *domain.Order

	stage := stageStarted
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		record, err := s.records.GetByID(txCtx, recordID)
		if err != nil {
			return err
		}
		stage = stageStockChecked

		if _, err := s.records.DeductStock(txCtx, recordID, quantity); err != nil {
			s.log.Warnf(txCtx, "order rejected record_id=%d want=%d available=%d stage=%s",
				recordID, quantity, record.Qty, stage)
			return err
		}
		stage = stageStockDeducted

		order = &domain.Order{
			ID:       uuid.New().String(),
			RecordID: recordID,
			Quantity: quantity,
		}
		if err := s.orders.Create(txCtx, order); err != nil {
			return err
		}
		stage = stageOrderRecorded
		return nil
	})
	if err != nil {
		metrics.OrdersRejected.WithLabelValues(rejectReason(err)).Inc()
		s.log.Warnf(ctx, "order aborted record_id=%d quantity=%d stage=%s err=%v",
			recordID, quantity, stage, err)
		return nil, err
	}

	metrics.OrdersPlaced.Inc()
	s.log.Infof(ctx, "order committed id=%s record_id=%d quantity=%d", order.ID, recordID, quantity)
	return order, nil
}

// rejectReason — метка причины отказа для метрик.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "internal"
	}
}
