package ports

import "context"

// PageCache — кэш готовых страниц списка (сериализованных тел ответа).
// Требования к реализации: потокобезопасность; значения копируются
// целиком при записи и чтении; истечение по TTL.
type PageCache interface {
	// Get — тело страницы по ключу; (body, true) при попадании,
	// (nil, false) при промахе или истечении TTL.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set — сохранить тело страницы под ключом на время TTL.
	Set(ctx context.Context, key string, body []byte) error
}
