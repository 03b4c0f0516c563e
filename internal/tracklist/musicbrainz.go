package tracklist

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Gunvolt24/record-store/internal/ports"
)

// Проверка, что Client удовлетворяет интерфейсу порта.
var _ ports.TracklistFetcher = (*Client)(nil)

// Ограничение на размер ответа MusicBrainz: релиз с треклистом —
// это десятки килобайт, мегабайта хватает с запасом.
const maxResponseBytes = 1 << 20

// Client — best-effort клиент MusicBrainz: по mbid релиза возвращает
// названия треков первого носителя. Ошибки здесь не критичны —
// вызывающая сторона логирует их и продолжает с пустым списком.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient — конструктор; timeout ограничивает весь запрос,
// чтобы обогащение не могло подвесить путь записи.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Ответ MusicBrainz (XML, fmt=xml): metadata → release → medium-list →
// medium → track-list → track → recording → title.
type mbMetadata struct {
	Release struct {
		MediumList struct {
			Medium []struct {
				TrackList struct {
					Track []struct {
						Recording struct {
							Title string `xml:"title"`
						} `xml:"recording"`
					} `xml:"track"`
				} `xml:"track-list"`
			} `xml:"medium"`
		} `xml:"medium-list"`
	} `xml:"release"`
}

// Fetch — список треков релиза по mbid.
func (c *Client) Fetch(ctx context.Context, mbid string) ([]string, error) {
	u := fmt.Sprintf("%s/ws/2/release/%s?inc=recordings&fmt=xml", c.baseURL, url.PathEscape(mbid))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("musicbrainz request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("musicbrainz status %d for mbid=%s", resp.StatusCode, mbid)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var meta mbMetadata
	if err := xml.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	// Берём первый носитель релиза (как и исходный каталог).
	media := meta.Release.MediumList.Medium
	if len(media) == 0 {
		return []string{}, nil
	}

	tracks := media[0].TrackList.Track
	titles := make([]string, 0, len(tracks))
	for _, tr := range tracks {
		titles = append(titles, tr.Recording.Title)
	}
	return titles, nil
}
