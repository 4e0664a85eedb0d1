// File: collections/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Backing-buffer acquisition shared by Deque and Stack.

package collections

import (
	"fmt"

	"github.com/momentics/hioload-pooled/api"
	"github.com/momentics/hioload-pooled/pool"
)

// MaxCapacity is the largest capacity growth will request.
const MaxCapacity = 0x7FFFFFC7

const (
	growFactor  = 2
	minimumGrow = 4
)

// Option customizes container construction.
type Option[T any] func(*storage[T])

// WithPool backs the container with p instead of pool.Shared[T]().
func WithPool[T any](p api.ArrayPool[T]) Option[T] {
	return func(s *storage[T]) {
		if p != nil {
			s.pool = p
		}
	}
}

// storage rents and returns backing buffers for one container.
type storage[T any] struct {
	pool api.ArrayPool[T]
	// clearRefs is set for element types holding pointers; vacated slots
	// and returned buffers are zeroed so they do not pin garbage.
	clearRefs bool
}

func newStorage[T any](opts []Option[T]) storage[T] {
	s := storage[T]{clearRefs: pool.ContainsReferences[T]()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.pool == nil {
		s.pool = pool.Shared[T]()
	}
	return s
}

// alloc rents a buffer of at least n elements; n == 0 yields nil without
// touching the pool.
func (s *storage[T]) alloc(n int) []T {
	if n == 0 {
		return nil
	}
	buf, err := s.pool.Rent(n)
	if err != nil {
		panic(fmt.Sprintf("collections: rent %d: %v", n, err))
	}
	return buf
}

// free hands buf back to the pool. Zero-length buffers are not pool-owned.
func (s *storage[T]) free(buf []T) {
	if len(buf) == 0 {
		return
	}
	if err := s.pool.Return(buf, s.clearRefs); err != nil {
		panic(fmt.Sprintf("collections: return buffer of length %d: %v", len(buf), err))
	}
}

// zero clears buf when the element type holds references.
func (s *storage[T]) zero(buf []T) {
	if s.clearRefs {
		clear(buf)
	}
}

// checkCapacity panics when a requested capacity cannot be allocated.
func checkCapacity(n int) {
	if n > MaxCapacity {
		panic(fmt.Sprintf("collections: capacity %d exceeds maximum %d", n, MaxCapacity))
	}
}
