// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract pooling APIs: size-classed array renting and reclamation.

package api

// ArrayPool rents and reclaims []T buffers. Implementations are not
// goroutine-safe; callers own synchronization.
type ArrayPool[T any] interface {
	// Rent returns a slice whose length is at least minimumLength.
	Rent(minimumLength int) ([]T, error)

	// Return hands a rented slice back; it must not be used afterwards.
	// clear zeroes the contents before the slice is retained.
	Return(buf []T, clear bool) error

	// Trim releases idle buffers according to current memory pressure.
	Trim() bool

	// Stats exposes accounting counters for observability.
	Stats() PoolStats
}

// PoolStats aggregates rent/return accounting of an ArrayPool.
type PoolStats struct {
	Name      string        `json:"name"`
	Rents     uint64        `json:"rents"`
	Hits      uint64        `json:"hits"`
	Misses    uint64        `json:"misses"`
	Oversized uint64        `json:"oversized"`
	Returns   uint64        `json:"returns"`
	Drops     uint64        `json:"drops"`
	Trimmed   uint64        `json:"trimmed"`
	Buckets   []BucketStats `json:"buckets,omitempty"`
}

// BucketStats describes a single populated size class.
type BucketStats struct {
	Class  int `json:"class"`
	Length int `json:"length"`
	Count  int `json:"count"`
}

// Pooled reports how many buffers currently sit in all buckets.
func (s PoolStats) Pooled() int {
	n := 0
	for _, b := range s.Buckets {
		n += b.Count
	}
	return n
}
