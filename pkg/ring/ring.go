// Package ring implements a circular linked collection anchored on a
// permanent sentinel node.
//
// The last real node (tail) always links to the sentinel, and the sentinel
// links back to the first real node, or to itself when the ring is empty.
// Every structural mutation bumps a version stamp so live iterators can
// fail fast.
//
// WARN: NOT CONCURRENT SAFE!! The version stamp detects misuse, it does
// not prevent it.
package ring

import (
	"go.uber.org/atomic"

	"github.com/snwfog/sequence.go/pkg/invariant"
)

// region Node
type node[T any] struct {
	value    T
	sentinel bool
	next     *node[T]
}

func newsentinel[T any]() *node[T] {
	s := &node[T]{sentinel: true}
	s.next = s
	return s
}

// endregion

// region Ring

// Ring is a circular collection. The zero value is an empty ring ready
// to use.
type Ring[T any] struct {
	tail  *node[T]
	count int

	// atomic only so an iterator handed to another goroutine reads a
	// stale stamp without a data race; tail and count are plain fields
	// and the ring is still single writer.
	version atomic.Uint64
}

// New returns an empty ring holding only its sentinel.
func New[T any]() *Ring[T] {
	r := &Ring[T]{tail: newsentinel[T]()}
	r.check("constructor")
	return r
}

// lazyinit allocates the sentinel of a zero value ring.
func (r *Ring[T]) lazyinit() {
	if r.tail == nil && r.count == 0 {
		r.tail = newsentinel[T]()
	}
}

func (r *Ring[T]) check(where string) {
	if invariant.Enabled {
		invariant.Assert(r.WellFormed(), where)
	}
}

func (r *Ring[T]) Len() int {
	return r.count
}

func (r *Ring[T]) IsEmpty() bool {
	return r.count == 0
}

// Add appends v as the last element. It never rejects a value.
func (r *Ring[T]) Add(v T) bool {
	r.lazyinit()
	r.check("start of add")

	n := &node[T]{value: v, next: r.tail.next}
	r.tail.next = n
	r.tail = n
	r.count++
	r.version.Inc()

	r.check("end of add")
	return true
}

// Clear drops every element in O(1). Clearing an empty ring is a no-op and
// does not invalidate iterators.
func (r *Ring[T]) Clear() {
	r.lazyinit()
	r.check("start of clear")
	if r.count == 0 {
		return
	}

	old := r.tail
	s := old.next
	old.next = nil
	s.next = s
	r.tail = s
	r.count = 0
	r.version.Inc()

	r.check("end of clear")
}

// Do calls f on each element in insertion order. f must not mutate the ring.
func (r *Ring[T]) Do(f func(T)) {
	if r.tail == nil {
		return
	}

	s := r.tail.next
	for n := s.next; n != s; n = n.next {
		f(n.value)
	}
}

func (r *Ring[T]) Slice() []T {
	out := make([]T, 0, r.count)
	r.Do(func(v T) {
		out = append(out, v)
	})
	return out
}

// RemoveFunc removes every element for which pred returns true and
// returns how many were removed. pred must not mutate the ring; if it
// does the walk stops with an ErrConcurrentModification.
func (r *Ring[T]) RemoveFunc(pred func(T) bool) (int, error) {
	removed := 0
	it := r.Iterator()
	for {
		ok, err := it.HasNext()
		if err != nil {
			return removed, err
		}
		if !ok {
			return removed, nil
		}

		v, err := it.Next()
		if err != nil {
			return removed, err
		}

		if pred(v) {
			if err := it.Remove(); err != nil {
				return removed, err
			}
			removed++
		}
	}
}

func (r *Ring[T]) Iterator() *Iterator[T] {
	r.lazyinit()
	return newiterator(r)
}

// endregion
