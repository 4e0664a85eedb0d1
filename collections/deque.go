// File: collections/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deque is a growable circular buffer over pooled storage. Elements can be
// pushed and popped at both ends in O(1) amortized time.

package collections

import (
	"iter"

	"github.com/momentics/hioload-pooled/api"
)

const dequeKind = "deque"

// Deque is a double-ended queue backed by a ring buffer rented from an
// api.ArrayPool. Not safe for concurrent use.
//
// Layout: the logical element i lives at buf[(head+i) % len(buf)]; tail is
// the next free slot for PushTail. head == tail both when empty and when full.
type Deque[T any] struct {
	buf     []T
	head    int
	tail    int
	size    int
	version uint64
	store   storage[T]
}

// NewDeque creates an empty deque. No storage is rented until the first push.
func NewDeque[T any](opts ...Option[T]) *Deque[T] {
	return &Deque[T]{store: newStorage(opts)}
}

// NewDequeWithCapacity creates an empty deque able to hold at least capacity
// elements without growing.
func NewDequeWithCapacity[T any](capacity int, opts ...Option[T]) (*Deque[T], error) {
	if capacity < 0 {
		return nil, api.OutOfRange("capacity", capacity)
	}
	d := NewDeque(opts...)
	d.buf = d.store.alloc(capacity)
	return d, nil
}

// NewDequeFrom creates a deque holding a copy of src, head first.
func NewDequeFrom[T any](src []T, opts ...Option[T]) *Deque[T] {
	d := NewDeque(opts...)
	d.buf = d.store.alloc(len(src))
	d.size = copy(d.buf, src)
	d.tail = d.wrap(d.size)
	return d
}

// CollectDeque creates a deque from the values of seq, in order.
func CollectDeque[T any](seq iter.Seq[T], opts ...Option[T]) *Deque[T] {
	d := NewDeque(opts...)
	for v := range seq {
		d.PushTail(v)
	}
	return d
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.size }

// Cap returns the number of elements the current buffer can hold.
func (d *Deque[T]) Cap() int { return len(d.buf) }

// Version returns the structural modification counter.
func (d *Deque[T]) Version() uint64 { return d.version }

// PushTail appends x after the last element.
func (d *Deque[T]) PushTail(x T) {
	if d.size == len(d.buf) {
		d.grow(d.size + 1)
	}
	d.buf[d.tail] = x
	d.tail = d.next(d.tail)
	d.size++
	d.version++
}

// PushHead inserts x before the first element.
func (d *Deque[T]) PushHead(x T) {
	if d.size == len(d.buf) {
		d.grow(d.size + 1)
	}
	d.head = d.prev(d.head)
	d.buf[d.head] = x
	d.size++
	d.version++
}

// PopHead removes and returns the first element.
func (d *Deque[T]) PopHead() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, api.EmptyCollection(dequeKind)
	}
	return d.popHead(), nil
}

// TryPopHead removes and returns the first element if there is one.
func (d *Deque[T]) TryPopHead() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.popHead(), true
}

// PopTail removes and returns the last element.
func (d *Deque[T]) PopTail() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, api.EmptyCollection(dequeKind)
	}
	return d.popTail(), nil
}

// TryPopTail removes and returns the last element if there is one.
func (d *Deque[T]) TryPopTail() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.popTail(), true
}

// PeekHead returns the first element without removing it.
func (d *Deque[T]) PeekHead() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, api.EmptyCollection(dequeKind)
	}
	return d.buf[d.head], nil
}

// TryPeekHead returns the first element if there is one.
func (d *Deque[T]) TryPeekHead() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// PeekTail returns the last element without removing it.
func (d *Deque[T]) PeekTail() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, api.EmptyCollection(dequeKind)
	}
	return d.buf[d.prev(d.tail)], nil
}

// TryPeekTail returns the last element if there is one.
func (d *Deque[T]) TryPeekTail() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.prev(d.tail)], true
}

// HeadRef returns a pointer to the first slot for in-place updates. The
// pointer is invalidated by any operation that resizes the deque.
func (d *Deque[T]) HeadRef() (*T, error) {
	if d.size == 0 {
		return nil, api.EmptyCollection(dequeKind)
	}
	return &d.buf[d.head], nil
}

// TailRef returns a pointer to the last slot; see HeadRef.
func (d *Deque[T]) TailRef() (*T, error) {
	if d.size == 0 {
		return nil, api.EmptyCollection(dequeKind)
	}
	return &d.buf[d.prev(d.tail)], nil
}

// Enqueue is PushTail, for api.Queue.
func (d *Deque[T]) Enqueue(x T) { d.PushTail(x) }

// Dequeue is TryPopHead, for api.Queue.
func (d *Deque[T]) Dequeue() (T, bool) { return d.TryPopHead() }

// Clear removes all elements, keeping the buffer.
func (d *Deque[T]) Clear() {
	if d.size != 0 {
		first, second := d.segments()
		d.store.zero(first)
		d.store.zero(second)
		d.size = 0
	}
	d.head = 0
	d.tail = 0
	d.version++
}

// ContainsFunc reports whether any element satisfies pred, scanning from
// head to tail.
func (d *Deque[T]) ContainsFunc(pred func(T) bool) bool {
	first, second := d.segments()
	for _, v := range first {
		if pred(v) {
			return true
		}
	}
	for _, v := range second {
		if pred(v) {
			return true
		}
	}
	return false
}

// ToSlice returns the elements head first in a newly allocated slice.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, d.size)
	d.copyOut(out)
	return out
}

// CopyTo writes the elements head first into dst starting at offset.
func (d *Deque[T]) CopyTo(dst []T, offset int) error {
	if err := checkDestination(dst, offset, d.size); err != nil {
		return err
	}
	d.copyOut(dst[offset:])
	return nil
}

// All returns an iterator over the elements head first. Unlike Enumerate,
// it does not detect modification; the caller must not mutate the deque
// while ranging.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(d.at(i)) {
				return
			}
		}
	}
}

// Enumerate returns a version-checked enumerator, head first.
func (d *Deque[T]) Enumerate() *Enumerator[T] {
	return newEnumerator[T](d, dequeKind)
}

// EnsureCapacity grows the buffer to hold at least capacity elements and
// returns the resulting capacity.
func (d *Deque[T]) EnsureCapacity(capacity int) (int, error) {
	if capacity < 0 {
		return 0, api.OutOfRange("capacity", capacity)
	}
	if len(d.buf) < capacity {
		d.grow(capacity)
	}
	return len(d.buf), nil
}

// TrimExcess shrinks the buffer to the element count when less than 90% of
// it is in use. Pooled buffers are rounded up to a size class, so the
// resulting capacity may exceed Len.
func (d *Deque[T]) TrimExcess() {
	threshold := int(float64(len(d.buf)) * 0.9)
	if d.size < threshold {
		d.resize(d.size)
	}
}

// TrimExcessTo resizes the buffer to hold capacity elements.
func (d *Deque[T]) TrimExcessTo(capacity int) error {
	if capacity < 0 || capacity < d.size {
		return api.OutOfRange("capacity", capacity)
	}
	if capacity == len(d.buf) {
		return nil
	}
	d.resize(capacity)
	return nil
}

// Release returns the buffer to the pool and leaves the deque empty.
func (d *Deque[T]) Release() {
	d.store.free(d.buf)
	d.buf = nil
	d.size = 0
	d.head = 0
	d.tail = 0
	d.version++
}

func (d *Deque[T]) popHead() T {
	x := d.buf[d.head]
	if d.store.clearRefs {
		var zero T
		d.buf[d.head] = zero
	}
	d.head = d.next(d.head)
	d.size--
	d.version++
	return x
}

func (d *Deque[T]) popTail() T {
	d.tail = d.prev(d.tail)
	x := d.buf[d.tail]
	if d.store.clearRefs {
		var zero T
		d.buf[d.tail] = zero
	}
	d.size--
	d.version++
	return x
}

// at returns logical element i; i must be in [0, size).
func (d *Deque[T]) at(i int) T {
	idx := d.head + i
	if idx >= len(d.buf) {
		idx -= len(d.buf)
	}
	return d.buf[idx]
}

func (d *Deque[T]) next(i int) int {
	i++
	if i == len(d.buf) {
		i = 0
	}
	return i
}

func (d *Deque[T]) prev(i int) int {
	if i == 0 {
		i = len(d.buf)
	}
	return i - 1
}

// wrap maps a count onto a tail index in the current buffer.
func (d *Deque[T]) wrap(n int) int {
	if n == len(d.buf) {
		return 0
	}
	return n
}

// segments returns the occupied region as at most two runs, head first.
func (d *Deque[T]) segments() (first, second []T) {
	if d.size == 0 {
		return nil, nil
	}
	if d.head < d.tail {
		return d.buf[d.head : d.head+d.size], nil
	}
	return d.buf[d.head:], d.buf[:d.tail]
}

// copyOut copies the elements in logical order to dst, which must hold size elements.
func (d *Deque[T]) copyOut(dst []T) {
	first, second := d.segments()
	n := copy(dst, first)
	copy(dst[n:], second)
}

// grow enlarges the buffer to at least minCapacity elements.
func (d *Deque[T]) grow(minCapacity int) {
	capacity := len(d.buf)
	newCapacity := growFactor * capacity
	if newCapacity > MaxCapacity || newCapacity < 0 {
		newCapacity = MaxCapacity
	}
	newCapacity = max(newCapacity, capacity+minimumGrow, minCapacity)
	checkCapacity(newCapacity)
	d.resize(newCapacity)
}

// resize moves the elements to a new buffer of at least capacity elements,
// starting at index 0, and returns the old buffer to the pool.
func (d *Deque[T]) resize(capacity int) {
	buf := d.store.alloc(capacity)
	d.copyOut(buf)
	d.store.free(d.buf)
	d.buf = buf
	d.head = 0
	d.tail = d.wrap(d.size)
	d.version++
}

// checkDestination validates a CopyTo target for n elements.
func checkDestination[T any](dst []T, offset, n int) error {
	if dst == nil {
		return api.InvalidArgument("dst", "nil destination")
	}
	if offset < 0 || offset > len(dst) {
		return api.OutOfRange("offset", offset)
	}
	if len(dst)-offset < n {
		return api.InvalidArgument("dst", "destination too small").
			WithContext("required", n).
			WithContext("available", len(dst)-offset)
	}
	return nil
}

// Ensure compile-time compliance.
var (
	_ api.Queue[int] = (*Deque[int])(nil)
	_ api.Releaser   = (*Deque[int])(nil)
)
