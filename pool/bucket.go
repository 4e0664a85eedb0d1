// File: pool/bucket.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity LIFO free list for one size class.
// Not thread-safe: push/pop are plain index bumps.

package pool

import "time"

const (
	// trimAfter is the idle window for low and medium pressure.
	trimAfter = 60 * time.Second
	// highTrimAfter is the idle window under high pressure.
	highTrimAfter = 10 * time.Second
)

type bucket[T any] struct {
	// slots grows on demand up to limit, so a large limit costs nothing
	// until buffers actually arrive.
	slots [][]T
	limit int
	count int
	// stamp is set by trim when it sees the zero value.
	stamp time.Time
}

func newBucket[T any](limit int) *bucket[T] {
	return &bucket[T]{limit: limit}
}

// push stores buf; returns false if the bucket is full.
func (b *bucket[T]) push(buf []T) bool {
	if b.count >= b.limit {
		return false
	}
	if b.count == 0 {
		// Empty to non-empty: the next trim starts the idle clock.
		b.stamp = time.Time{}
	}
	if b.count < len(b.slots) {
		b.slots[b.count] = buf
	} else {
		b.slots = append(b.slots, buf)
	}
	b.count++
	return true
}

// pop removes the most recently pushed buffer, or returns nil.
func (b *bucket[T]) pop() []T {
	if b.count == 0 {
		return nil
	}
	b.count--
	buf := b.slots[b.count]
	b.slots[b.count] = nil
	return buf
}

// trim evicts idle buffers and returns how many were dropped.
func (b *bucket[T]) trim(now time.Time, pressure Pressure) int {
	if b.count == 0 {
		return 0
	}

	threshold := trimAfter
	if pressure == PressureHigh {
		threshold = highTrimAfter
	}

	if b.stamp.IsZero() {
		b.stamp = now
		return 0
	}
	if now.Sub(b.stamp) <= threshold {
		return 0
	}

	var trimCount int
	switch pressure {
	case PressureHigh:
		trimCount = b.count
	case PressureMedium:
		trimCount = 2
	default:
		trimCount = 1
	}

	evicted := 0
	for b.count > 0 && trimCount > 0 {
		b.count--
		b.slots[b.count] = nil
		trimCount--
		evicted++
	}

	if b.count > 0 {
		// Survivors get a quarter window before the next eviction.
		b.stamp = b.stamp.Add(threshold / 4)
	} else {
		b.stamp = time.Time{}
	}
	return evicted
}
