//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Gunvolt24/record-store/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeRecordData — генератор валидной записи каталога.
// Artist/Album уникальны, чтобы не натыкаться на (artist, album, format).
func MakeRecordData(opts ...func(*domain.RecordData)) domain.RecordData {
	d := domain.RecordData{
		Artist:   "Artist-" + UniqSuffix(),
		Album:    "Album-" + UniqSuffix(),
		Price:    19.99,
		Qty:      10,
		Format:   domain.FormatVinyl,
		Category: domain.CategoryRock,
	}

	for _, fn := range opts {
		fn(&d)
	}
	return d
}

func WithQty(qty int) func(*domain.RecordData) {
	return func(d *domain.RecordData) { d.Qty = qty }
}

func WithFormat(f domain.Format) func(*domain.RecordData) {
	return func(d *domain.RecordData) { d.Format = f }
}

func WithCategory(c domain.Category) func(*domain.RecordData) {
	return func(d *domain.RecordData) { d.Category = c }
}

func WithArtistAlbum(artist, album string) func(*domain.RecordData) {
	return func(d *domain.RecordData) {
		d.Artist = artist
		d.Album = album
	}
}
