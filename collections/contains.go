// File: collections/contains.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package collections

// searchable is implemented by Deque and Stack.
type searchable[T any] interface {
	ContainsFunc(pred func(T) bool) bool
}

// Contains reports whether c holds an element equal to v.
func Contains[T comparable, C searchable[T]](c C, v T) bool {
	return c.ContainsFunc(func(x T) bool { return x == v })
}
