// Package pool
// Author: momentics <momentics@gmail.com>
//
// Size-classed array pooling for hioload-pooled.
//
// ArrayPool[T] keeps up to MaxPerBucket free buffers for each of NumBuckets
// power-of-two size classes (16 .. 1<<30 elements). Rent pops from the
// class's free list or allocates a buffer of the exact class length; Return
// pushes it back, dropping it when the class is full. Trim reclaims buffers
// that stayed idle longer than a window scaled by memory pressure; nothing
// runs in the background.
//
// Pools are single-threaded by contract. Shared[T] hands out one pool per
// element type; NewArrayPool builds isolated pools.
// See arraypool.go, bucket.go, sizeclass.go for implementation details.
package pool
