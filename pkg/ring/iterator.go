package ring

import (
	"github.com/pkg/errors"

	"github.com/snwfog/sequence.go/pkg/invariant"
)

// region Iterator

// Iterator walks a ring in insertion order and may remove the element it
// last returned. It is bound to the ring's version at creation: any
// mutation not made through this iterator makes every later call fail
// with ErrConcurrentModification.
//
// Before the first Next, and right after a Remove, cursor == precursor.
type Iterator[T any] struct {
	ring      *Ring[T]
	precursor *node[T]
	cursor    *node[T]
	version   uint64
}

func newiterator[T any](r *Ring[T]) *Iterator[T] {
	s := r.tail.next
	it := &Iterator[T]{
		ring:      r,
		precursor: s,
		cursor:    s,
		version:   r.version.Load(),
	}
	it.check("iterator constructor")
	return it
}

func (it *Iterator[T]) check(where string) {
	if invariant.Enabled {
		invariant.Assert(it.WellFormed(), where)
	}
}

func (it *Iterator[T]) stale(op string) error {
	if it.version != it.ring.version.Load() {
		return errors.Wrapf(invariant.ErrConcurrentModification, "version mismatch at %s", op)
	}
	return nil
}

func (it *Iterator[T]) HasNext() (bool, error) {
	it.check("start of hasNext")
	if err := it.stale("hasNext"); err != nil {
		return false, err
	}

	return it.cursor != it.ring.tail, nil
}

func (it *Iterator[T]) Next() (T, error) {
	var zero T

	it.check("start of next")
	ok, err := it.HasNext()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, errors.Wrap(invariant.ErrNoSuchElement, "next")
	}

	it.precursor = it.cursor
	it.cursor = it.cursor.next

	it.check("end of next")
	return it.cursor.value, nil
}

// Remove unlinks the element last returned by Next. Removing the tail
// hands the tail role to its predecessor so the sentinel stays right
// after the tail.
func (it *Iterator[T]) Remove() error {
	it.check("start of remove")
	if err := it.stale("remove"); err != nil {
		return err
	}
	if it.cursor == it.precursor {
		return errors.Wrap(invariant.ErrIllegalState, "remove without a preceding next")
	}

	r := it.ring
	removed := it.cursor
	it.precursor.next = removed.next
	if removed == r.tail {
		r.tail = it.precursor
	}
	removed.next = nil

	it.cursor = it.precursor
	r.count--
	it.version++
	r.version.Inc()

	it.check("end of remove")
	return nil
}

// WellFormed checks the ring and, while the iterator is current, that
// precursor is in the ring, cursor is precursor or its successor, and the
// cursor sits on the sentinel only together with the precursor.
func (it *Iterator[T]) WellFormed() error {
	r := it.ring
	if err := r.WellFormed(); err != nil {
		return err
	}

	// a stale iterator refuses every call, its positions no longer matter
	if it.version != r.version.Load() {
		return nil
	}

	found := false
	for n := r.tail; ; {
		if n == it.precursor {
			found = true
			break
		}

		n = n.next
		if n == r.tail {
			break
		}
	}
	if !found {
		return invariant.Report("precursor not in ring")
	}

	if it.cursor != it.precursor && it.cursor != it.precursor.next {
		return invariant.Report("cursor is neither precursor nor its successor")
	}

	if it.cursor == r.tail.next && it.cursor != it.precursor {
		return invariant.Report("cursor is the sentinel but precursor is not")
	}

	return nil
}

// endregion
