// File: pool/default.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide pool per element type.

package pool

import (
	"reflect"
	"sync"

	"github.com/momentics/hioload-pooled/api"
)

// statsPool is the type-erased view of an ArrayPool kept in the registry.
type statsPool interface {
	Stats() api.PoolStats
}

var (
	sharedMu    sync.Mutex
	sharedPools = make(map[reflect.Type]statsPool)
)

// Shared returns the process-wide pool for element type T, creating it on
// first use. Only the lookup is synchronized; the returned pool is not.
func Shared[T any]() *ArrayPool[T] {
	key := reflect.TypeFor[T]()
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if p, ok := sharedPools[key]; ok {
		return p.(*ArrayPool[T])
	}
	p := NewArrayPool[T]()
	sharedPools[key] = p
	return p
}

// SharedStats snapshots every shared pool created so far, keyed by element
// type. Like the pools themselves, it must run on the goroutine that uses them.
func SharedStats() map[reflect.Type]api.PoolStats {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	out := make(map[reflect.Type]api.PoolStats, len(sharedPools))
	for key, p := range sharedPools {
		out[key] = p.Stats()
	}
	return out
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
