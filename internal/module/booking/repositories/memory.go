package repositories

import (
	"context"
	"sync"
	"time"

	"wirpackens-service/internal/module/booking/models/entity"
	"wirpackens-service/internal/pkg/memstore"
)

type memoryRepositories struct {
	bookings *memstore.Collection[entity.Booking]
}

func NewMemory(store *memstore.Collection[entity.Booking]) Repositories {
	return &memoryRepositories{bookings: store}
}

func (r *memoryRepositories) InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	return r.bookings.Insert(func(id int64, now time.Time) entity.Booking {
		booking.ID = id
		booking.CreatedAt = now
		booking.UpdatedAt = now
		return booking
	}), nil
}

func (r *memoryRepositories) FindBookingByID(ctx context.Context, id int64) (entity.Booking, bool, error) {
	booking, ok := r.bookings.Get(id)
	return booking, ok, nil
}

func (r *memoryRepositories) UpdateBooking(ctx context.Context, id int64, upd entity.BookingUpdate) (entity.Booking, bool, error) {
	booking, ok := r.bookings.Update(id, func(b *entity.Booking, now time.Time) {
		upd.Apply(b)
		b.UpdatedAt = now
	})
	return booking, ok, nil
}

func (r *memoryRepositories) ListBookings(ctx context.Context) ([]entity.Booking, error) {
	return r.bookings.List(), nil
}

type lockEntry struct {
	ch   chan struct{}
	refs int
}

type memoryLocker struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

// NewMemoryLocker is the single-process Locker. A key's entry lives only
// while someone holds or waits for it.
func NewMemoryLocker() Locker {
	return &memoryLocker{locks: make(map[string]*lockEntry)}
}

func (l *memoryLocker) Lock(ctx context.Context, key string) (func(context.Context) error, error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &lockEntry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-e.ch
			l.release(key, e)
		})
		return nil
	}, nil
}

func (l *memoryLocker) release(key string, e *lockEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}

// pruneEvery bounds how often Claim sweeps expired event ids.
const pruneEvery = time.Minute

type memoryEventTracker struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	seen      map[string]time.Time
	lastPrune time.Time
}

// NewMemoryEventTracker remembers claimed event ids for ttl, the same window
// the Redis tracker keeps its keys for.
func NewMemoryEventTracker(ttl time.Duration) EventTracker {
	return newMemoryEventTracker(ttl, time.Now)
}

func newMemoryEventTracker(ttl time.Duration, now func() time.Time) *memoryEventTracker {
	return &memoryEventTracker{
		ttl:       ttl,
		now:       now,
		seen:      make(map[string]time.Time),
		lastPrune: now(),
	}
}

func (t *memoryEventTracker) Claim(ctx context.Context, eventID string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if now.Sub(t.lastPrune) >= pruneEvery {
		t.prune(now)
	}

	if expiry, ok := t.seen[eventID]; ok && now.Before(expiry) {
		return false, nil
	}
	t.seen[eventID] = now.Add(t.ttl)
	return true, nil
}

func (t *memoryEventTracker) Release(ctx context.Context, eventID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.seen, eventID)
	return nil
}

func (t *memoryEventTracker) prune(now time.Time) {
	for id, expiry := range t.seen {
		if !now.Before(expiry) {
			delete(t.seen, id)
		}
	}
	t.lastPrune = now
}
