package pool_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-pooled/pool"
)

type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// pressureVar lets a test change pressure between Trim calls.
type pressureVar struct{ level pool.Pressure }

func (p *pressureVar) Pressure() pool.Pressure { return p.level }

func newTrimPool(t *testing.T, level pool.Pressure) (*pool.ArrayPool[int], *fakeClock, *pressureVar) {
	t.Helper()
	clock := newFakeClock()
	pv := &pressureVar{level: level}
	p := pool.NewArrayPool[int](
		pool.WithMaxPerBucket(8),
		pool.WithClock(clock.Now),
		pool.WithPressureSource(pv),
	)
	return p, clock, pv
}

func fill(t *testing.T, p *pool.ArrayPool[int], n, length int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, p.Return(make([]int, length), false))
	}
}

func TestTrim_FirstCallOnlyStartsClock(t *testing.T) {
	p, clock, _ := newTrimPool(t, pool.PressureHigh)
	fill(t, p, 4, 16)

	clock.Advance(time.Hour)
	assert.True(t, p.Trim())
	assert.Equal(t, 4, p.Stats().Pooled(), "untimed bucket must not be evicted")
}

func TestTrim_LowPressureEvictsOne(t *testing.T) {
	p, clock, _ := newTrimPool(t, pool.PressureLow)
	fill(t, p, 4, 16)

	p.Trim() // stamp = t0
	clock.Advance(30 * time.Second)
	p.Trim()
	assert.Equal(t, 4, p.Stats().Pooled())

	clock.Advance(31 * time.Second) // t0+61s
	p.Trim()
	assert.Equal(t, 3, p.Stats().Pooled())

	// Survivors got a quarter window: next eviction after t0+15s+60s.
	p.Trim()
	assert.Equal(t, 3, p.Stats().Pooled())
	clock.Advance(15 * time.Second) // t0+76s
	p.Trim()
	assert.Equal(t, 2, p.Stats().Pooled())
	assert.Equal(t, uint64(2), p.Stats().Trimmed)
}

func TestTrim_MediumPressureEvictsTwo(t *testing.T) {
	p, clock, _ := newTrimPool(t, pool.PressureMedium)
	fill(t, p, 5, 32)

	p.Trim()
	clock.Advance(61 * time.Second)
	p.Trim()
	assert.Equal(t, 3, p.Stats().Pooled())
}

func TestTrim_HighPressureEmptiesBucket(t *testing.T) {
	p, clock, _ := newTrimPool(t, pool.PressureHigh)
	fill(t, p, 6, 16)
	fill(t, p, 2, 1024)

	p.Trim()
	clock.Advance(5 * time.Second)
	p.Trim()
	assert.Equal(t, 8, p.Stats().Pooled())

	clock.Advance(6 * time.Second)
	p.Trim()
	st := p.Stats()
	assert.Zero(t, st.Pooled())
	assert.Empty(t, st.Buckets)
	assert.Equal(t, uint64(8), st.Trimmed)
}

func TestTrim_PressureScalesWindow(t *testing.T) {
	p, clock, pv := newTrimPool(t, pool.PressureLow)
	fill(t, p, 3, 16)

	p.Trim()
	clock.Advance(20 * time.Second)
	p.Trim()
	assert.Equal(t, 3, p.Stats().Pooled(), "20s is inside the low-pressure window")

	pv.level = pool.PressureHigh
	p.Trim()
	assert.Zero(t, p.Stats().Pooled(), "20s exceeds the high-pressure window")
}

func TestTrim_RefilledBucketRestartsClock(t *testing.T) {
	p, clock, _ := newTrimPool(t, pool.PressureLow)
	fill(t, p, 1, 16)

	p.Trim() // stamp = t0
	clock.Advance(59 * time.Second)

	buf, err := p.Rent(16)
	require.NoError(t, err)
	require.NoError(t, p.Return(buf, false)) // empty -> non-empty resets the stamp

	clock.Advance(2 * time.Second) // t0+61s
	p.Trim()
	assert.Equal(t, 1, p.Stats().Pooled(), "bucket touched within the window is unaffected")

	clock.Advance(61 * time.Second)
	p.Trim()
	assert.Zero(t, p.Stats().Pooled())
}

func TestTrim_EmptyPool(t *testing.T) {
	p, _, _ := newTrimPool(t, pool.PressureHigh)
	assert.True(t, p.Trim())
	assert.Zero(t, p.Stats().Trimmed)
}
