// Package trail keeps the most recent entries of an append only stream,
// such as the positions a moving particle left behind.
//
// The file is a genny template; concrete trails such as PointTrail are
// generated from it.
package trail

//go:generate genny -in=$GOFILE -out=point_trail.go gen "Element=Point"

import (
	"github.com/cheekybits/genny/generic"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/snwfog/sequence.go/pkg/ring"
)

type Element generic.Type

// ElementTrail holds at most limit Elements, oldest first.
type ElementTrail struct {
	ring  *ring.Ring[Element]
	limit int

	// atomic so Trimmed can be polled from another goroutine; Push and
	// the ring itself are single writer.
	trimmed atomic.Int64
}

func NewElementTrail(limit int) *ElementTrail {
	if limit < 1 {
		limit = 1
	}

	return &ElementTrail{
		ring:  ring.New[Element](),
		limit: limit,
	}
}

func (t *ElementTrail) Len() int {
	return t.ring.Len()
}

func (t *ElementTrail) Limit() int {
	return t.limit
}

// Push records e and drops the oldest entries beyond the limit. It returns
// how many entries were dropped.
func (t *ElementTrail) Push(e Element) (int, error) {
	t.ring.Add(e)

	n := 0
	it := t.ring.Iterator()
	for t.ring.Len() > t.limit {
		if _, err := it.Next(); err != nil {
			return n, errors.Wrap(err, "trim trail")
		}
		if err := it.Remove(); err != nil {
			return n, errors.Wrap(err, "trim trail")
		}
		n++
	}

	t.trimmed.Add(int64(n))
	return n, nil
}

// Elements returns the kept entries, oldest first.
func (t *ElementTrail) Elements() []Element {
	return t.ring.Slice()
}

// Trimmed is the number of entries dropped since creation or Reset.
func (t *ElementTrail) Trimmed() int64 {
	return t.trimmed.Load()
}

func (t *ElementTrail) Reset() {
	t.ring.Clear()
	t.trimmed.Store(0)
}

// WellFormed checks the underlying ring.
func (t *ElementTrail) WellFormed() error {
	return t.ring.WellFormed()
}
