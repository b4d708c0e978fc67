package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/internal/ports"
	"github.com/Gunvolt24/wb_tickets/pkg/metrics"
)

var _ ports.PurchaseCache = (*LRUCacheTTL)(nil)

type entry struct {
	requestID string
	summary   domain.OrderSummary
	expiresAt time.Time
}

// LRUCacheTTL - обработанные заявки (request_id -> итог) с вытеснением LRU и TTL.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, requestID string) (domain.OrderSummary, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[requestID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return domain.OrderSummary{}, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return domain.OrderSummary{}, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.summary, true
}

// Set - пустой request_id не кэшируется (такие заявки не дедуплицируются).
func (c *LRUCacheTTL) Set(_ context.Context, requestID string, summary domain.OrderSummary) error {
	if requestID == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[requestID]; ok {
		ent := elem.Value.(*entry)
		ent.summary = summary
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		requestID: requestID,
		summary:   summary,
		expiresAt: c.expiryFrom(now),
	})
	c.index[requestID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Len - текущее число записей (включая ещё не вычищенные истёкшие).
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
