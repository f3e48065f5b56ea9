package repositories

import (
	"time"
)

func NewMemoryEventTrackerWithClock(ttl time.Duration, now func() time.Time) EventTracker {
	return newMemoryEventTracker(ttl, now)
}

func HeldLocks(l Locker) int {
	m := l.(*memoryLocker)
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

func TrackedEvents(t EventTracker) int {
	m := t.(*memoryEventTracker)
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.seen)
}
