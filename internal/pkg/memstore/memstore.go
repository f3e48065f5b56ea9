// Package memstore is the default in-process storage backend. Each record
// type gets its own Collection with sequential ids.
package memstore

import (
	"sort"
	"sync"
	"time"
)

// Record is implemented by entities a Collection can hold.
type Record interface {
	RecordID() int64
	RecordCreatedAt() time.Time
}

// Collection stores values of T by id. Values go in and come out by copy;
// T must not share mutable state (maps, slices, pointers) with the caller.
type Collection[T Record] struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]T
	now    func() time.Time
}

func New[T Record]() *Collection[T] {
	return &Collection[T]{
		nextID: 1,
		items:  make(map[int64]T),
		now:    time.Now,
	}
}

// WithClock replaces the timestamp source.
func (c *Collection[T]) WithClock(now func() time.Time) *Collection[T] {
	c.now = now
	return c
}

// Insert allocates the next id and stores what build returns for it.
func (c *Collection[T]) Insert(build func(id int64, now time.Time) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	item := build(id, c.now())
	c.items[id] = item
	return item
}

func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// Update applies mutate to the stored value under the write lock. The
// second return is false when id is unknown.
func (c *Collection[T]) Update(id int64, mutate func(item *T, now time.Time)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	mutate(&item, c.now())
	c.items[id] = item
	return item, true
}

// List returns every record, newest first. Records created at the same
// instant are ordered by id, highest first.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].RecordCreatedAt(), out[j].RecordCreatedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return out[i].RecordID() > out[j].RecordID()
	})
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
