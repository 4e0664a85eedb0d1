// Package api
// Author: momentics@gmail.com
//
// Contracts implemented by the pooled containers.

package api

// Queue is a FIFO contract.
type Queue[T any] interface {
	// Enqueue adds an item at the tail.
	Enqueue(item T)
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

// Enumerable is implemented by containers that can be walked with a
// version-checked enumerator.
type Enumerable interface {
	Len() int
	Version() uint64
}

// Releaser returns pooled storage. The container is empty afterwards.
type Releaser interface {
	Release()
}
