// File: pool/arraypool.go
// Package pool implements size-classed array renting with usage-based trimming.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"time"

	"go.uber.org/zap"

	"github.com/momentics/hioload-pooled/api"
	"github.com/momentics/hioload-pooled/control"
)

// config collects ArrayPool construction options.
type config struct {
	name         string
	maxPerBucket int
	logger       *zap.Logger
	clock        func() time.Time
	pressure     PressureSource
}

// Option customizes a pool created with NewArrayPool.
type Option func(*config)

// WithName labels the pool in logs and stats.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithMaxPerBucket overrides the per-class retention limit. n <= 0 is ignored.
func WithMaxPerBucket(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxPerBucket = n
		}
	}
}

// WithLogger attaches a logger; drops and trims are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now for trim bookkeeping.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithPressureSource replaces the system memory probe used by Trim.
func WithPressureSource(ps PressureSource) Option {
	return func(c *config) {
		if ps != nil {
			c.pressure = ps
		}
	}
}

// ArrayPool hands out []T buffers from NumBuckets power-of-two size classes.
//
// ArrayPool is NOT safe for concurrent use: buckets are plain slot arrays
// with no locks or atomics. Callers sharing a pool across goroutines must
// serialize access themselves.
type ArrayPool[T any] struct {
	buckets      [NumBuckets]*bucket[T]
	empty        []T
	maxPerBucket int
	name         string
	log          *zap.Logger
	now          func() time.Time
	pressure     PressureSource
	stats        api.PoolStats
}

// NewArrayPool creates an isolated pool. The default retention limit comes
// from control.MaxArraysPerBucket.
func NewArrayPool[T any](opts ...Option) *ArrayPool[T] {
	cfg := config{
		name:         typeName[T](),
		maxPerBucket: control.MaxArraysPerBucket(),
		logger:       zap.NewNop(),
		clock:        time.Now,
		pressure:     SystemPressure{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ArrayPool[T]{
		empty:        make([]T, 0),
		maxPerBucket: cfg.maxPerBucket,
		name:         cfg.name,
		log:          cfg.logger.With(zap.String("pool", cfg.name)),
		now:          cfg.clock,
		pressure:     cfg.pressure,
	}
}

// Name returns the pool label.
func (p *ArrayPool[T]) Name() string { return p.name }

// MaxPerBucket returns the per-class retention limit.
func (p *ArrayPool[T]) MaxPerBucket() int { return p.maxPerBucket }

// Rent returns a buffer of at least minimumLength elements. Pooled lengths
// are rounded up to the size class so the buffer can be returned later.
// Contents of a reused buffer are whatever the previous owner left unless
// it was returned with clear set.
func (p *ArrayPool[T]) Rent(minimumLength int) ([]T, error) {
	id := SelectBucket(minimumLength)
	if validClass(id) {
		p.stats.Rents++
		if b := p.buckets[id]; b != nil {
			if buf := b.pop(); buf != nil {
				p.stats.Hits++
				return buf, nil
			}
		}
		p.stats.Misses++
		return make([]T, ClassLength(id)), nil
	}

	switch {
	case minimumLength == 0:
		return p.empty, nil
	case minimumLength < 0:
		return nil, api.OutOfRange("minimumLength", minimumLength)
	}
	p.stats.Rents++
	p.stats.Oversized++
	return make([]T, minimumLength), nil
}

// Return hands buf back to its size class. Buffers whose length is not the
// canonical class length are rejected with api.ErrInvalidArgument; zero-length
// and oversized buffers are accepted and discarded.
func (p *ArrayPool[T]) Return(buf []T, clearBuf bool) error {
	if buf == nil {
		return api.InvalidArgument("buf", "nil buffer")
	}

	id := SelectBucket(len(buf))
	if !validClass(id) {
		return nil
	}
	if len(buf) != ClassLength(id) {
		return api.InvalidArgument("buf", "length does not match a size class").
			WithContext("length", len(buf)).
			WithContext("class_length", ClassLength(id))
	}
	if clearBuf {
		clear(buf)
	}

	b := p.buckets[id]
	if b == nil {
		b = newBucket[T](p.maxPerBucket)
		p.buckets[id] = b
	}
	p.stats.Returns++
	if !b.push(buf) {
		p.stats.Drops++
		p.log.Debug("bucket full, dropping returned buffer",
			zap.Int("class", id),
			zap.Int("length", len(buf)),
			zap.Int("max_per_bucket", p.maxPerBucket),
		)
	}
	return nil
}

// Trim evicts buffers from buckets that have stayed populated longer than
// the pressure-dependent idle window. It always reports true.
func (p *ArrayPool[T]) Trim() bool {
	now := p.now()
	pressure := p.pressure.Pressure()

	total := 0
	for id, b := range p.buckets {
		if b == nil {
			continue
		}
		if n := b.trim(now, pressure); n > 0 {
			total += n
			p.log.Debug("trimmed bucket",
				zap.Int("class", id),
				zap.Int("evicted", n),
				zap.Int("remaining", b.count),
				zap.Stringer("pressure", pressure),
			)
		}
	}
	p.stats.Trimmed += uint64(total)
	return true
}

// Stats returns a snapshot of the pool counters and bucket populations.
func (p *ArrayPool[T]) Stats() api.PoolStats {
	s := p.stats
	s.Name = p.name
	s.Buckets = nil
	for id, b := range p.buckets {
		if b == nil || b.count == 0 {
			continue
		}
		s.Buckets = append(s.Buckets, api.BucketStats{
			Class:  id,
			Length: ClassLength(id),
			Count:  b.count,
		})
	}
	return s
}

// Ensure compile-time compliance.
var _ api.ArrayPool[byte] = (*ArrayPool[byte])(nil)
