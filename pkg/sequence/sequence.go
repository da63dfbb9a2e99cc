// Package sequence implements a singly linked, non circular sequence
// edited through an external cursor.
//
// The cursor marks the current element; the precursor is the node right
// before it, or nil when the cursor is on the head or there is no current
// element. Insertion happens after the cursor, removal at the cursor.
//
// WARN: NOT CONCURRENT SAFE!! One goroutine, one cursor.
package sequence

import (
	"github.com/pkg/errors"

	"github.com/snwfog/sequence.go/pkg/invariant"
)

// region Node
type node[T any] struct {
	value T
	next  *node[T]
}

// endregion

// region Sequence
type Sequence[T any] struct {
	head      *node[T]
	tail      *node[T]
	manyNodes int

	cursor    *node[T]
	precursor *node[T]
}

// New returns an empty sequence with no current element.
func New[T any]() *Sequence[T] {
	s := &Sequence[T]{}
	s.check("constructor")
	return s
}

// Of returns a sequence holding vs in order, with no current element.
func Of[T any](vs ...T) *Sequence[T] {
	s := New[T]()
	for _, v := range vs {
		s.Append(v)
	}
	s.cursor, s.precursor = nil, nil
	s.check("end of of")
	return s
}

func (s *Sequence[T]) check(where string) {
	if invariant.Enabled {
		invariant.Assert(s.WellFormed(), where)
	}
}

func (s *Sequence[T]) Len() int {
	s.check("start of len")
	return s.manyNodes
}

// Start makes the first element current; an empty sequence has none.
func (s *Sequence[T]) Start() {
	s.check("start of start")
	s.cursor = s.head
	s.precursor = nil
	s.check("end of start")
}

func (s *Sequence[T]) IsCurrent() bool {
	s.check("start of isCurrent")
	return s.cursor != nil
}

// Current returns the current element or ErrIllegalState if there is none.
func (s *Sequence[T]) Current() (T, error) {
	s.check("start of current")
	if s.cursor == nil {
		var zero T
		return zero, errors.Wrap(invariant.ErrIllegalState, "no current element at current")
	}
	return s.cursor.value, nil
}

// Advance moves the cursor one element forward. Advancing from the last
// element leaves no current element.
func (s *Sequence[T]) Advance() error {
	s.check("start of advance")
	if s.cursor == nil {
		return errors.Wrap(invariant.ErrIllegalState, "no current element at advance")
	}

	if s.cursor == s.tail {
		s.precursor, s.cursor = nil, nil
	} else {
		s.precursor, s.cursor = s.cursor, s.cursor.next
	}

	s.check("end of advance")
	return nil
}

// Append inserts v after the current element, or at the front when there
// is no current element. v becomes the current element.
func (s *Sequence[T]) Append(v T) {
	s.check("start of append")

	if s.cursor != nil {
		n := &node[T]{value: v, next: s.cursor.next}
		s.cursor.next = n
		if s.cursor == s.tail {
			s.tail = n
		}
		s.precursor, s.cursor = s.cursor, n
	} else {
		n := &node[T]{value: v, next: s.head}
		if s.head == nil {
			s.tail = n
		}
		s.head, s.cursor = n, n
		s.precursor = nil
	}
	s.manyNodes++

	s.check("end of append")
}

// RemoveCurrent deletes the current element. The element after it, if
// any, becomes current.
func (s *Sequence[T]) RemoveCurrent() error {
	s.check("start of removeCurrent")
	if s.cursor == nil {
		return errors.Wrap(invariant.ErrIllegalState, "no current element at removeCurrent")
	}

	removed := s.cursor
	switch {
	case s.manyNodes == 1:
		s.head, s.tail = nil, nil
		s.precursor, s.cursor = nil, nil
	case removed == s.head:
		s.head = removed.next
		s.cursor = s.head
	case removed == s.tail:
		s.tail = s.precursor
		s.tail.next = nil
		s.precursor, s.cursor = nil, nil
	default:
		s.precursor.next = removed.next
		s.cursor = removed.next
	}
	removed.next = nil
	s.manyNodes--

	s.check("end of removeCurrent")
	return nil
}

// AddAll appends a copy of addend's elements after the last element. The
// current element of s does not change and addend is left untouched,
// so s.AddAll(s) doubles s.
func (s *Sequence[T]) AddAll(addend *Sequence[T]) error {
	s.check("start of addAll")
	if addend == nil {
		return errors.Wrap(invariant.ErrInvalidArgument, "addend is nil")
	}
	addend.check("start of addAll (addend)")

	c := addend.Clone()
	if c.head != nil {
		if s.head == nil {
			s.head = c.head
		} else {
			s.tail.next = c.head
		}
		s.tail = c.tail
		s.manyNodes += c.manyNodes
	}

	s.check("end of addAll")
	addend.check("end of addAll (addend)")
	return nil
}

// Clone returns an independent copy of s. Whatever element is current in
// s is current at the same position in the copy.
func (s *Sequence[T]) Clone() *Sequence[T] {
	s.check("start of clone")

	c := &Sequence[T]{manyNodes: s.manyNodes}
	for n := s.head; n != nil; n = n.next {
		cp := &node[T]{value: n.value}
		if c.tail == nil {
			c.head = cp
		} else {
			c.tail.next = cp
		}
		c.tail = cp

		if n == s.precursor {
			c.precursor = cp
		}
		if n == s.cursor {
			c.cursor = cp
		}
	}

	s.check("end of clone")
	c.check("end of clone (result)")
	return c
}

// Slice returns the elements in order without moving the cursor.
func (s *Sequence[T]) Slice() []T {
	out := make([]T, 0, s.manyNodes)
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// endregion
