package ports

import "context"

// MessageConsumer — фоновый потребитель сообщений (импорт каталога).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
