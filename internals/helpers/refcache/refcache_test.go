package refcache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newFixture() (*Cache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	return NewWithClock(5*time.Minute, clock.Now), clock
}

func TestGetSet(t *testing.T) {
	c, _ := newFixture()

	_, ok := c.Get("categories")
	assert.False(t, ok)

	c.Set("categories", []string{"Fuel"})
	v, ok := c.Get("categories")
	require.True(t, ok)
	assert.Equal(t, []string{"Fuel"}, v)
}

func TestTTLExpiry(t *testing.T) {
	c, clock := newFixture()
	c.Set("k", 1)

	clock.Advance(5 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok, "exactly at the TTL boundary the entry is still live")

	clock.Advance(time.Nanosecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestInvalidate(t *testing.T) {
	c, _ := newFixture()
	c.Set("a", 1)
	c.Set("b", 2)

	c.Invalidate("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.InvalidateAll()
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestGetOrLoad(t *testing.T) {
	c, clock := newFixture()
	calls := 0
	load := func() (any, error) {
		calls++
		return "rows", nil
	}

	v, err := c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, "rows", v)
	assert.Equal(t, 1, calls)

	// Second hit is served from the cache.
	_, err = c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// After expiry the loader runs again.
	clock.Advance(6 * time.Minute)
	_, err = c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoadError(t *testing.T) {
	c, _ := newFixture()
	boom := errors.New("db down")

	_, err := c.GetOrLoad("k", func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	// Errors are not cached.
	v, err := c.GetOrLoad("k", func() (any, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
