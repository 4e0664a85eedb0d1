// File: collections/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package collections

import (
	"iter"

	"github.com/momentics/hioload-pooled/api"
)

const (
	stackKind            = "stack"
	defaultStackCapacity = 4
)

// Stack is a LIFO backed by a linear buffer rented from an api.ArrayPool.
// Elements occupy buf[0:size]; the top is buf[size-1]. Not safe for
// concurrent use.
type Stack[T any] struct {
	buf     []T
	size    int
	version uint64
	store   storage[T]
}

// NewStack creates an empty stack. No storage is rented until the first push.
func NewStack[T any](opts ...Option[T]) *Stack[T] {
	return &Stack[T]{store: newStorage(opts)}
}

// NewStackWithCapacity creates an empty stack able to hold at least capacity
// elements without growing.
func NewStackWithCapacity[T any](capacity int, opts ...Option[T]) (*Stack[T], error) {
	if capacity < 0 {
		return nil, api.OutOfRange("capacity", capacity)
	}
	s := NewStack(opts...)
	s.buf = s.store.alloc(capacity)
	return s, nil
}

// NewStackFrom creates a stack as if every element of src was pushed in
// order; src[len(src)-1] ends up on top.
func NewStackFrom[T any](src []T, opts ...Option[T]) *Stack[T] {
	s := NewStack(opts...)
	s.buf = s.store.alloc(len(src))
	s.size = copy(s.buf, src)
	return s
}

// CollectStack pushes the values of seq in order.
func CollectStack[T any](seq iter.Seq[T], opts ...Option[T]) *Stack[T] {
	s := NewStack(opts...)
	for v := range seq {
		s.Push(v)
	}
	return s
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.size }

// Cap returns the number of elements the current buffer can hold.
func (s *Stack[T]) Cap() int { return len(s.buf) }

// Version returns the structural modification counter.
func (s *Stack[T]) Version() uint64 { return s.version }

// Push places x on top.
func (s *Stack[T]) Push(x T) {
	if s.size == len(s.buf) {
		s.grow(s.size + 1)
	}
	s.buf[s.size] = x
	s.size++
	s.version++
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, api.EmptyCollection(stackKind)
	}
	return s.pop(), nil
}

// TryPop removes and returns the top element if there is one.
func (s *Stack[T]) TryPop() (T, bool) {
	if s.size == 0 {
		var zero T
		return zero, false
	}
	return s.pop(), true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, api.EmptyCollection(stackKind)
	}
	return s.buf[s.size-1], nil
}

// TryPeek returns the top element if there is one.
func (s *Stack[T]) TryPeek() (T, bool) {
	if s.size == 0 {
		var zero T
		return zero, false
	}
	return s.buf[s.size-1], true
}

// Clear removes all elements, keeping the buffer.
func (s *Stack[T]) Clear() {
	s.store.zero(s.buf[:s.size])
	s.size = 0
	s.version++
}

// ContainsFunc reports whether any element satisfies pred, scanning from the top.
func (s *Stack[T]) ContainsFunc(pred func(T) bool) bool {
	for i := s.size - 1; i >= 0; i-- {
		if pred(s.buf[i]) {
			return true
		}
	}
	return false
}

// ToSlice returns the elements in pop order.
func (s *Stack[T]) ToSlice() []T {
	out := make([]T, s.size)
	s.copyOut(out)
	return out
}

// CopyTo writes the elements in pop order into dst starting at offset.
func (s *Stack[T]) CopyTo(dst []T, offset int) error {
	if err := checkDestination(dst, offset, s.size); err != nil {
		return err
	}
	s.copyOut(dst[offset:])
	return nil
}

// All returns an iterator in pop order. It does not detect modification.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.size - 1; i >= 0; i-- {
			if !yield(s.buf[i]) {
				return
			}
		}
	}
}

// Enumerate returns a version-checked enumerator in pop order.
func (s *Stack[T]) Enumerate() *Enumerator[T] {
	return newEnumerator[T](s, stackKind)
}

// EnsureCapacity grows the buffer to hold at least capacity elements and
// returns the resulting capacity.
func (s *Stack[T]) EnsureCapacity(capacity int) (int, error) {
	if capacity < 0 {
		return 0, api.OutOfRange("capacity", capacity)
	}
	if len(s.buf) < capacity {
		s.grow(capacity)
	}
	return len(s.buf), nil
}

// TrimExcess shrinks the buffer to the element count when less than 90% of
// it is in use.
func (s *Stack[T]) TrimExcess() {
	threshold := int(float64(len(s.buf)) * 0.9)
	if s.size < threshold {
		s.resize(s.size)
	}
}

// TrimExcessTo resizes the buffer to hold capacity elements.
func (s *Stack[T]) TrimExcessTo(capacity int) error {
	if capacity < 0 || capacity < s.size {
		return api.OutOfRange("capacity", capacity)
	}
	if capacity == len(s.buf) {
		return nil
	}
	s.resize(capacity)
	return nil
}

// Release returns the buffer to the pool and leaves the stack empty.
func (s *Stack[T]) Release() {
	s.store.free(s.buf)
	s.buf = nil
	s.size = 0
	s.version++
}

func (s *Stack[T]) pop() T {
	s.size--
	x := s.buf[s.size]
	if s.store.clearRefs {
		var zero T
		s.buf[s.size] = zero
	}
	s.version++
	return x
}

// at returns element i in pop order.
func (s *Stack[T]) at(i int) T {
	return s.buf[s.size-1-i]
}

func (s *Stack[T]) copyOut(dst []T) {
	for i := 0; i < s.size; i++ {
		dst[i] = s.buf[s.size-1-i]
	}
}

// grow enlarges the buffer to at least minCapacity elements.
func (s *Stack[T]) grow(minCapacity int) {
	newCapacity := defaultStackCapacity
	if len(s.buf) != 0 {
		newCapacity = growFactor * len(s.buf)
	}
	if newCapacity > MaxCapacity || newCapacity < 0 {
		newCapacity = MaxCapacity
	}
	newCapacity = max(newCapacity, minCapacity)
	checkCapacity(newCapacity)
	s.resize(newCapacity)
}

// resize moves the elements into a new buffer of at least capacity elements.
func (s *Stack[T]) resize(capacity int) {
	buf := s.store.alloc(capacity)
	copy(buf, s.buf[:s.size])
	s.store.free(s.buf)
	s.buf = buf
	s.version++
}

// Ensure compile-time compliance.
var _ api.Releaser = (*Stack[int])(nil)
