package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snwfog/sequence.go/pkg/invariant"
)

func corrupt(t *testing.T, s *Sequence[int], contains string) {
	t.Helper()

	err := s.WellFormed()
	assert.True(t, invariant.IsCorrupt(err))
	if err != nil {
		assert.Contains(t, err.Error(), contains)
	}
}

func TestWellFormedCyclic1(t *testing.T) {
	s := Of(1, 2, 3, 4)
	s.tail.next = s.head.next // 4 -> 2
	corrupt(t, s, "cyclic")
}

func TestWellFormedCyclic2(t *testing.T) {
	s := Of(1)
	s.head.next = s.head
	corrupt(t, s, "cyclic")
}

func TestWellFormedTail1(t *testing.T) {
	s := Of(1, 2, 3)
	s.tail = s.head.next
	corrupt(t, s, "tail is not the last node")
}

func TestWellFormedTail2(t *testing.T) {
	s := New[int]()
	s.tail = &node[int]{value: 1}
	corrupt(t, s, "tail should be nil")
}

func TestWellFormedCount(t *testing.T) {
	s := Of(1, 2, 3)
	s.manyNodes = 2
	corrupt(t, s, "manyNodes")

	s = New[int]()
	s.manyNodes = 1
	corrupt(t, s, "manyNodes")
}

func TestWellFormedPrecursor1(t *testing.T) {
	s := Of(1, 2, 3)
	s.precursor = &node[int]{value: 1, next: s.head.next}
	s.cursor = s.head.next
	corrupt(t, s, "precursor not in list")
}

func TestWellFormedPrecursor2(t *testing.T) {
	s := Of(1, 2, 3)
	s.precursor = s.tail
	s.cursor = s.head
	corrupt(t, s, "precursor is tail")

	// with no current element the precursor may rest on the tail
	s.cursor = nil
	assert.NoError(t, s.WellFormed())
}

func TestWellFormedCursor1(t *testing.T) {
	s := Of(1, 2, 3)
	s.precursor = s.head
	s.cursor = s.tail
	corrupt(t, s, "cursor is not the node after precursor")

	s.cursor = nil
	corrupt(t, s, "cursor is not the node after precursor")
}

func TestWellFormedCursor2(t *testing.T) {
	s := Of(1, 2, 3)
	s.cursor = s.tail
	corrupt(t, s, "cursor is not head")

	s.cursor = &node[int]{value: 1}
	corrupt(t, s, "cursor is not head")
}

func TestWellFormedAfterEveryOperation(t *testing.T) {
	s := New[int]()
	steps := []func(){
		func() { s.Append(1) },
		func() { s.Append(2) },
		func() { s.Start() },
		func() { _ = s.Advance() },
		func() { s.Append(3) },
		func() { _ = s.AddAll(Of(7, 8)) },
		func() { _ = s.RemoveCurrent() },
		func() { _ = s.Advance() },
		func() { s = s.Clone() },
		func() { _ = s.RemoveCurrent() },
		func() { _ = s.AddAll(s) },
	}

	for i, step := range steps {
		step()
		assert.NoError(t, s.WellFormed(), "step %d", i)
	}

	assert.Equal(t, []int{1, 2, 7, 1, 2, 7}, s.Slice())
}
