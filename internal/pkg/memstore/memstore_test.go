package memstore_test

import (
	"sync"
	"testing"
	"time"

	"wirpackens-service/internal/pkg/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID        int64
	Text      string
	CreatedAt time.Time
}

func (n note) RecordID() int64            { return n.ID }
func (n note) RecordCreatedAt() time.Time { return n.CreatedAt }

func TestInsertAllocatesSequentialIDs(t *testing.T) {
	c := memstore.New[note]()

	a := c.Insert(func(id int64, now time.Time) note { return note{ID: id, Text: "a", CreatedAt: now} })
	b := c.Insert(func(id int64, now time.Time) note { return note{ID: id, Text: "b", CreatedAt: now} })

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, 2, c.Len())
}

func TestConcurrentInsertsGetDistinctIDs(t *testing.T) {
	c := memstore.New[note]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Insert(func(id int64, now time.Time) note { return note{ID: id, CreatedAt: now} })
		}()
	}
	wg.Wait()

	seen := map[int64]bool{}
	for _, n := range c.List() {
		assert.False(t, seen[n.ID])
		seen[n.ID] = true
	}
	assert.Len(t, seen, 100)
}

func TestGetAndUpdate(t *testing.T) {
	c := memstore.New[note]()
	c.Insert(func(id int64, now time.Time) note { return note{ID: id, Text: "draft", CreatedAt: now} })

	got, ok := c.Get(1)
	require.True(t, ok)
	got.Text = "mutated by caller"

	stored, _ := c.Get(1)
	assert.Equal(t, "draft", stored.Text)

	updated, ok := c.Update(1, func(n *note, now time.Time) { n.Text = "final" })
	require.True(t, ok)
	assert.Equal(t, "final", updated.Text)

	_, ok = c.Update(42, func(n *note, now time.Time) {})
	assert.False(t, ok)

	_, ok = c.Get(42)
	assert.False(t, ok)
}

func TestListNewestFirstWithIDTiebreak(t *testing.T) {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(time.Minute), base.Add(time.Minute), base.Add(-time.Minute)}
	i := 0
	c := memstore.New[note]().WithClock(func() time.Time {
		t := times[i]
		i++
		return t
	})

	for range times {
		c.Insert(func(id int64, now time.Time) note { return note{ID: id, CreatedAt: now} })
	}

	var ids []int64
	for _, n := range c.List() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []int64{3, 2, 1, 4}, ids)
}
