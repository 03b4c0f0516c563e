package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/record-store/internal/ports"
	"github.com/Gunvolt24/record-store/pkg/metrics"
)

// Проверка, что LRUPageCache удовлетворяет интерфейсу порта.
var _ ports.PageCache = (*LRUPageCache)(nil)

type entry struct {
	key       string
	body      []byte
	expiresAt time.Time
}

// LRUPageCache — процессный кэш готовых страниц: LRU-вытеснение по
// capacity плюс истечение по TTL. Тела страниц копируются целиком при
// записи и чтении, записи никогда не мутируются на месте.
type LRUPageCache struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewLRUPageCache — конструктор; ttl <= 0 означает «без истечения».
func NewLRUPageCache(capacity int, ttl time.Duration) *LRUPageCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUPageCache{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — тело страницы по ключу; просроченная запись удаляется и
// считается промахом.
func (c *LRUPageCache) Get(_ context.Context, key string) ([]byte, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneBody(ent.body), true
}

// Set — сохранить тело страницы под ключом; TTL отсчитывается заново.
func (c *LRUPageCache) Set(_ context.Context, key string, body []byte) error {
	if key == "" || body == nil {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.body = cloneBody(body)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:       key,
		body:      cloneBody(body),
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	metrics.CacheSize.Set(float64(len(c.index)))
	return nil
}

// ------ вспомогательные функции ------

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUPageCache) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LRUPageCache) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	ent := elem.Value.(*entry)
	delete(c.index, ent.key)
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *LRUPageCache) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — момент истечения относительно текущего времени.
func (c *LRUPageCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет просроченные элементы из хвоста
// до первого актуального.
func (c *LRUPageCache) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if !now.After(ent.expiresAt) {
			return
		}
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("expired").Inc()
	}
}

// cloneBody — копия тела, чтобы внешние изменения не задевали кэш.
func cloneBody(b []byte) []byte {
	return append([]byte(nil), b...)
}
