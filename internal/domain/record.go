package domain

import "time"

// Format — закрытый перечень носителей записи.
type Format string

const (
	FormatVinyl    Format = "Vinyl"
	FormatCD       Format = "CD"
	FormatCassette Format = "Cassette"
	FormatDigital  Format = "Digital"
)

// Category — закрытый перечень музыкальных категорий.
type Category string

const (
	CategoryRock        Category = "Rock"
	CategoryPop         Category = "Pop"
	CategoryJazz        Category = "Jazz"
	CategoryIndie       Category = "Indie"
	CategoryAlternative Category = "Alternative"
	CategoryClassical   Category = "Classical"
	CategoryHipHop      Category = "Hip-Hop"
)

// Record — одна позиция каталога (пластинка/диск).
// Кортеж (artist, album, format) уникален; qty меняется только
// условным декрементом в хранилище.
type Record struct {
	ID        int64     `json:"id"`
	Artist    string    `json:"artist"`
	Album     string    `json:"album"`
	Price     float64   `json:"price"`
	Qty       int       `json:"qty"`
	Format    Format    `json:"format"`
	Category  Category  `json:"category"`
	MBID      string    `json:"mbid,omitempty"`
	Tracklist []string  `json:"tracklist"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"lastModified"`
}

// RecordData — данные записи для create/update: всё, что может прийти
// от клиента, плюс tracklist, который заполняет только обогащение.
type RecordData struct {
	Artist    string   `json:"artist"`
	Album     string   `json:"album"`
	Price     float64  `json:"price"`
	Qty       int      `json:"qty"`
	Format    Format   `json:"format"`
	Category  Category `json:"category"`
	MBID      string   `json:"mbid,omitempty"`
	Tracklist []string `json:"-"`
}

// KnownFormat — проверка принадлежности закрытому перечню Format.
func KnownFormat(f Format) bool {
	switch f {
	case FormatVinyl, FormatCD, FormatCassette, FormatDigital:
		return true
	}
	return false
}

// KnownCategory — проверка принадлежности закрытому перечню Category.
func KnownCategory(c Category) bool {
	switch c {
	case CategoryRock, CategoryPop, CategoryJazz, CategoryIndie,
		CategoryAlternative, CategoryClassical, CategoryHipHop:
		return true
	}
	return false
}
