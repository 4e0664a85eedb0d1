// Package collections provides growable containers whose backing arrays are
// rented from a pool.ArrayPool instead of being left to the garbage collector.
//
// # Containers
//
//   - Deque: a ring buffer with O(1) push and pop at both ends. Enqueue and
//     Dequeue give it FIFO semantics.
//   - Stack: a LIFO over a linear buffer.
//
// Both grow by renting a larger buffer, copying the live elements in
// logical order and returning the old buffer. Release hands the current
// buffer back; call it when a container is no longer needed:
//
//	d := collections.NewDeque[int]()
//	defer d.Release()
//
//	d.PushTail(1)
//	d.PushHead(0)
//	v, err := d.PopHead() // 0, nil
//
// # Errors
//
// Pop, Peek, HeadRef and TailRef on an empty container return an error
// matching api.ErrEmptyCollection; the Try variants report absence with a
// boolean instead. Enumerators fail with api.ErrConcurrentModification once
// the container is structurally modified.
//
// # Thread Safety
//
// Containers and the pools behind them are not goroutine-safe. A container
// and its pool must be used from one goroutine at a time.
package collections
