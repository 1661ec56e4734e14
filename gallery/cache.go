package gallery

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const DefaultCacheCapacity = 5

// Resource is a decoded image the cache owns. Release is called exactly once,
// when the resource is evicted or the cache is cleared.
type Resource interface {
	Release()
}

// DecodeFunc turns a locator into a resource. Errors should wrap ErrNotFound
// or ErrDecodeFailure; anything else is treated as a decode failure.
type DecodeFunc[R Resource] func(locator string) (R, error)

// Cache keeps at most Capacity decoded resources keyed by locator.
// Eviction is first-in first-out by insertion; hits do not refresh an entry.
// A Cache is not safe for concurrent use.
type Cache[R Resource] struct {
	capacity int
	items    map[string]R
	queue    []string
}

func NewCache[R Resource](capacity int) *Cache[R] {
	if capacity < 1 {
		capacity = DefaultCacheCapacity
	}
	return &Cache[R]{
		capacity: capacity,
		items:    make(map[string]R, capacity),
		queue:    make([]string, 0, capacity),
	}
}

// Get returns the resident resource for locator, decoding and inserting it
// on a miss. A failed decode leaves the cache untouched and is retried on the
// next call.
func (c *Cache[R]) Get(locator string, decode DecodeFunc[R]) (R, error) {
	if res, ok := c.items[locator]; ok {
		return res, nil
	}

	res, err := decode(locator)
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrDecodeFailure) {
			err = fmt.Errorf("%w: %v", ErrDecodeFailure, err)
		}
		logrus.WithField("locator", locator).Warnf("Failed to load image: %v", err)
		var zero R
		return zero, err
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}
	c.items[locator] = res
	c.queue = append(c.queue, locator)

	return res, nil
}

func (c *Cache[R]) evictOldest() {
	oldest := c.queue[0]
	c.queue = c.queue[1:]
	res := c.items[oldest]
	delete(c.items, oldest)
	res.Release()
	logrus.WithField("locator", oldest).Debug("evicted cached image")
}

// Clear releases every resident resource and empties the cache.
func (c *Cache[R]) Clear() {
	for _, locator := range c.queue {
		c.items[locator].Release()
	}
	if len(c.queue) > 0 {
		logrus.Debugf("released %d cached images", len(c.queue))
	}
	c.items = make(map[string]R, c.capacity)
	c.queue = make([]string, 0, c.capacity)
}

func (c *Cache[R]) Len() int {
	return len(c.items)
}

func (c *Cache[R]) Capacity() int {
	return c.capacity
}

func (c *Cache[R]) Contains(locator string) bool {
	_, ok := c.items[locator]
	return ok
}

// Resident lists resident locators, oldest insertion first.
func (c *Cache[R]) Resident() []string {
	out := make([]string, len(c.queue))
	copy(out, c.queue)
	return out
}
