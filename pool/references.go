// File: pool/references.go
// Author: momentics <momentics@gmail.com>
//
// Pointer detection for element types. Buffers of pointer-free types can be
// pooled without clearing because stale contents keep nothing alive.

package pool

import (
	"reflect"
	"sync"
)

var refCache sync.Map // reflect.Type -> bool

// ContainsReferences reports whether values of T hold pointers, directly or
// through struct fields and array elements. Results are cached per type.
func ContainsReferences[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := refCache.Load(t); ok {
		return v.(bool)
	}
	has := hasPointers(t)
	refCache.Store(t, has)
	return has
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, strings, slices, maps, chans, funcs, interfaces, unsafe pointers.
		return true
	}
}
