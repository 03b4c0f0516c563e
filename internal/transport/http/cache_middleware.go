package rest

import (
	"bytes"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/record-store/internal/ports"
	"github.com/Gunvolt24/record-store/pkg/metrics"
)

// cacheKeyPrefix отделяет пространство ключей листинга от возможных
// будущих кэшируемых эндпоинтов.
const cacheKeyPrefix = "records:"

// CachePages — кэш готовых ответов GET /records.
// Запрос с cursor или с Cache-Control/Pragma no-cache идёт мимо кэша:
// не читает его и не пишет, ответ помечается no-store. Остальные
// запросы кэшируются по ключу из отсортированных query-параметров
// (cursor в ключе не участвует): попадание отдаёт сохранённое тело
// байт-в-байт, промах записывает свежий ответ при статусе 200.
func CachePages(pages ports.PageCache, ttl time.Duration) gin.HandlerFunc {
	maxAge := "public, max-age=" + strconv.Itoa(int(ttl.Seconds()))

	return func(c *gin.Context) {
		if bypassCache(c) {
			metrics.CacheOps.WithLabelValues("bypass").Inc()
			c.Header("Cache-Control", "no-store")
			c.Header("X-Cache-Status", "MISS")
			c.Next()
			return
		}

		key := cacheKey(c)

		if body, ok := pages.Get(c.Request.Context(), key); ok {
			c.Header("Cache-Control", maxAge)
			c.Header("X-Cache-Status", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		c.Header("Cache-Control", maxAge)
		c.Header("X-Cache-Status", "MISS")

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture
		c.Next()

		// Кэшируем только успешные страницы.
		if c.Writer.Status() == http.StatusOK {
			if err := pages.Set(c.Request.Context(), key, capture.buf.Bytes()); err != nil {
				// кэш не должен ломать выдачу
				_ = err
			}
		}
	}
}

// bypassCache — запросы, которым свежесть важнее кэша.
func bypassCache(c *gin.Context) bool {
	if c.Query("cursor") != "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.GetHeader("Cache-Control")), "no-cache") {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(c.GetHeader("Pragma")), "no-cache")
}

// cacheKey — детерминированный ключ: отсортированные пары name=value
// всех query-параметров, кроме cursor. Порядок параметров в URL
// на ключ не влияет.
func cacheKey(c *gin.Context) string {
	params := c.Request.URL.Query()
	parts := make([]string, 0, len(params))
	for name, values := range params {
		if name == "cursor" {
			continue
		}
		for _, v := range values {
			parts = append(parts, name+"="+v)
		}
	}
	sort.Strings(parts)
	return cacheKeyPrefix + strings.Join(parts, "&")
}

// bodyCapture — обёртка над gin.ResponseWriter, копирующая тело ответа
// по пути к клиенту.
type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
