package wcache

import (
	"container/list"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sultanrasulov/weather-sdk/weather"
)

const (
	// DefaultCapacity is the default maximum number of cached cities.
	DefaultCapacity = 10
	// DefaultTTL is the default time-to-live of a cached entry.
	DefaultTTL = 10 * time.Minute
)

// ErrEmptyKey is returned when a blank city name is given.
var ErrEmptyKey = errors.New("city name must not be blank")

// Cache is a bounded LRU cache of weather snapshots with TTL expiration.
// It is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*list.Element
	order    *list.List // Front = least recently touched, Back = most recently touched.
	stats    Stats
}

// entry is the value stored in the recency list elements. The key is kept
// here because eviction starts from list nodes.
type entry struct {
	key      string
	value    weather.Weather
	storedAt time.Time
}

// New creates a cache holding at most capacity entries, each valid for ttl
// after it is stored.
func New(capacity int, ttl time.Duration) (*Cache, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got: %d", capacity)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("ttl must be positive, got: %s", ttl)
	}
	return &Cache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}, nil
}

// Put stores a weather snapshot for the named city, replacing any previous
// entry and stamping it with the current time. The entry becomes the most
// recently touched. If the insert exceeds capacity, the least recently
// touched entry is evicted.
func (c *Cache) Put(city string, w weather.Weather) error {
	key, err := normalize(city)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		e := el.Value.(*entry)
		e.value = w
		e.storedAt = time.Now()
		c.order.MoveToBack(el)
		return nil
	}

	el := c.order.PushBack(&entry{
		key:      key,
		value:    w,
		storedAt: time.Now(),
	})
	c.entries[key] = el

	if len(c.entries) > c.capacity {
		c.evictOldestLocked()
	}
	return nil
}

// Get returns the cached snapshot for the named city if one is present and
// fresh, and marks it most recently touched. A stale entry is removed and
// reported as a miss.
func (c *Cache) Get(city string) (weather.Weather, bool, error) {
	key, err := normalize(city)
	if err != nil {
		return weather.Weather{}, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return weather.Weather{}, false, nil
	}

	e := el.Value.(*entry)
	if c.expiredLocked(e) {
		c.removeLocked(key)
		c.stats.Expirations++
		c.stats.Misses++
		return weather.Weather{}, false, nil
	}

	c.order.MoveToBack(el)
	c.stats.Hits++
	return e.value, true, nil
}

// Contains reports whether the named city has an entry, fresh or stale. It
// has no side effects and does not update recency.
func (c *Cache) Contains(city string) (bool, error) {
	key, err := normalize(city)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	return ok, nil
}

// IsFresh reports whether the named city has an entry whose age is within
// the TTL. It does not mutate the cache.
func (c *Cache) IsFresh(city string) (bool, error) {
	key, err := normalize(city)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return !c.expiredLocked(el.Value.(*entry)), nil
}

// Keys returns a snapshot of all cached city names, fresh and stale, from
// least to most recently touched. The returned slice is decoupled from later
// cache mutation.
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry).key)
	}
	return keys
}

// Remove deletes the entry for the named city. It does nothing if the city
// is not cached.
func (c *Cache) Remove(city string) error {
	key, err := normalize(city)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(key)
	return nil
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

// Len returns the number of entries, including stale entries that have not
// yet been lazily removed.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}

func (c *Cache) evictOldestLocked() {
	el := c.order.Front()
	if el == nil {
		return
	}
	c.removeLocked(el.Value.(*entry).key)
	c.stats.Evictions++
}

func (c *Cache) removeLocked(key string) {
	el, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)
	c.order.Remove(el)
}

// expiredLocked reports whether the entry's age is strictly beyond the TTL.
// An entry read at exactly storedAt+ttl is still fresh.
func (c *Cache) expiredLocked(e *entry) bool {
	return time.Since(e.storedAt) > c.ttl
}

func normalize(city string) (string, error) {
	if strings.TrimSpace(city) == "" {
		return "", ErrEmptyKey
	}
	return strings.ToLower(city), nil
}
