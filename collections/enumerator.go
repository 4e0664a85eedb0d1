// File: collections/enumerator.go
// Author: momentics <momentics@gmail.com>

package collections

import "github.com/momentics/hioload-pooled/api"

// indexed is the view an Enumerator walks: positions 0..Len()-1 in
// iteration order.
type indexed[T any] interface {
	api.Enumerable
	at(i int) T
}

// Enumerator walks a container while verifying it is not structurally
// modified. Any push, pop, clear, resize or release after the enumerator was
// created makes the next Next call fail with api.ErrConcurrentModification.
type Enumerator[T any] struct {
	src     indexed[T]
	kind    string
	version uint64
	pos     int
	current T
}

func newEnumerator[T any](src indexed[T], kind string) *Enumerator[T] {
	return &Enumerator[T]{src: src, kind: kind, version: src.Version(), pos: -1}
}

// Next advances to the following element. It returns false, nil once the
// container is exhausted.
func (e *Enumerator[T]) Next() (bool, error) {
	if v := e.src.Version(); v != e.version {
		return false, api.ConcurrentModification(e.kind, e.version, v)
	}
	next := e.pos + 1
	if next < e.src.Len() {
		e.pos = next
		e.current = e.src.at(next)
		return true, nil
	}
	var zero T
	e.pos = e.src.Len()
	e.current = zero
	return false, nil
}

// Current returns the element at the enumerator position.
func (e *Enumerator[T]) Current() T {
	return e.current
}

// Reset rewinds to before the first element.
func (e *Enumerator[T]) Reset() error {
	if v := e.src.Version(); v != e.version {
		return api.ConcurrentModification(e.kind, e.version, v)
	}
	var zero T
	e.pos = -1
	e.current = zero
	return nil
}
