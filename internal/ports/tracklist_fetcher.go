package ports

import "context"

// TracklistFetcher — внешний best-effort источник списков треков.
// Ошибки не критичны: вызывающая сторона логирует их и продолжает
// с пустым списком.
type TracklistFetcher interface {
	Fetch(ctx context.Context, mbid string) ([]string, error)
}
