package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/record-store/internal/ports"
)

// Проверка, что TxManager удовлетворяет интерфейсу порта.
var _ ports.TxManager = (*TxManager)(nil)

type txKey struct{}

// querier — общий контракт pgxpool.Pool и pgx.Tx; репозитории работают
// через него и потому одинаково ведут себя внутри и вне транзакции.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// queryEngine — транзакция из контекста, иначе пул.
func queryEngine(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// TxManager — транзакционный контекст поверх пула pgx.
// Транзакция кладётся в context и подхватывается репозиториями.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager — конструктор TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager { return &TxManager{pool: pool} }

// WithinTx — выполняет fn внутри транзакции.
// Ошибка fn → Rollback и возврат исходной причины; успех → Commit.
// Rollback в defer покрывает и панику внутри fn: транзакция
// освобождается на каждом пути выхода.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		// После Commit Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
