package client

import (
	"sync"
	"time"
)

// staleAfter - срок свежести закэшированного ответа. Протухшие записи
// перечитываются с сервера при следующем обращении.
const staleAfter = 30 * time.Second

type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

// queryCache - кэш ответов API в памяти процесса. Ключ - путь запроса
// вместе со строкой параметров.
type queryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func newQueryCache() *queryCache {
	return &queryCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// get возвращает значение по ключу, если оно есть и еще свежее
func (c *queryCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) > staleAfter {
		return nil, false
	}
	return entry.value, true
}

// set сохраняет значение с текущей отметкой времени
func (c *queryCache) set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, fetchedAt: c.now()}
}

// invalidate удаляет запись по ключу
func (c *queryCache) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// invalidatePrefix удаляет все записи, ключ которых начинается с prefix.
// Используется для сброса всех закэшированных страниц списка разом.
func (c *queryCache) invalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
		}
	}
}
