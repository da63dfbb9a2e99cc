// This file was automatically generated by genny.
// Any changes will be lost if this file is regenerated.
// see https://github.com/cheekybits/genny

package trail

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/snwfog/sequence.go/pkg/ring"
)

// PointTrail holds at most limit Points, oldest first.
type PointTrail struct {
	ring  *ring.Ring[Point]
	limit int

	// atomic so Trimmed can be polled from another goroutine; Push and
	// the ring itself are single writer.
	trimmed atomic.Int64
}

func NewPointTrail(limit int) *PointTrail {
	if limit < 1 {
		limit = 1
	}

	return &PointTrail{
		ring:  ring.New[Point](),
		limit: limit,
	}
}

func (t *PointTrail) Len() int {
	return t.ring.Len()
}

func (t *PointTrail) Limit() int {
	return t.limit
}

// Push records e and drops the oldest entries beyond the limit. It returns
// how many entries were dropped.
func (t *PointTrail) Push(e Point) (int, error) {
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

// Points returns the kept entries, oldest first.
func (t *PointTrail) Points() []Point {
	return t.ring.Slice()
}

// Trimmed is the number of entries dropped since creation or Reset.
func (t *PointTrail) Trimmed() int64 {
	return t.trimmed.Load()
}

func (t *PointTrail) Reset() {
	t.ring.Clear()
	t.trimmed.Store(0)
}

// WellFormed checks the underlying ring.
func (t *PointTrail) WellFormed() error {
	return t.ring.WellFormed()
}
