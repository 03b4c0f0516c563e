package ports

import "context"

// TxManager — транзакционный контекст поверх хранилища.
// WithinTx открывает транзакцию, кладёт её в контекст и выполняет fn;
// ошибка fn (или паника) — откат, иначе — коммит. Транзакция
// освобождается на каждом пути выхода.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
