package domain

// RecordFilter — фиксированный набор предикатов списка:
// artist/album — подстрока без учёта регистра; format/category — точное
// совпадение; q — подстрока по artist ИЛИ album ИЛИ category.
type RecordFilter struct {
	Q        string
	Artist   string
	Album    string
	Format   string
	Category string
}

// ListQuery — фильтр + параметры страницы.
// Cursor — id последней записи предыдущей страницы (0 — первая страница).
type ListQuery struct {
	Filter RecordFilter
	Limit  int
	Cursor int64
}

// RecordPage — страница выдачи с метаданными продолжения.
type RecordPage struct {
	Data        []*Record `json:"data"`
	NextCursor  *string   `json:"nextCursor"`
	HasNextPage bool      `json:"hasNextPage"`
}
