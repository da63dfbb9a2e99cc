package sequence

import (
	"github.com/snwfog/sequence.go/pkg/invariant"
)

// WellFormed verifies the sequence structure:
//  1. there is no cycle reachable from head (tortoise and hare)
//  2. tail is the last node reachable from head, nil when empty
//  3. manyNodes is the number of nodes reachable from head
//  4. precursor is nil or a node of the list; it is the tail only when
//     there is no current element
//  5. cursor is precursor.next when precursor is set, otherwise nil or head
//
// It returns nil or an error wrapping invariant.ErrCorrupt.
func (s *Sequence[T]) WellFormed() error {
	if s.head != nil {
		fast := s.head.next
		for p := s.head; fast != nil && fast.next != nil; p = p.next {
			if p == fast {
				return invariant.Report("list is cyclic")
			}
			fast = fast.next.next
		}
	}

	if s.head == nil {
		if s.tail != nil {
			return invariant.Report("tail should be nil because list is empty")
		}
	} else {
		last := s.head
		for last.next != nil {
			last = last.next
		}
		if last != s.tail {
			return invariant.Report("tail is not the last node")
		}
	}

	nodes := 0
	for n := s.head; n != nil; n = n.next {
		nodes++
	}
	if nodes != s.manyNodes {
		return invariant.Report("list holds %d nodes, manyNodes is %d", nodes, s.manyNodes)
	}

	if s.precursor != nil {
		found := false
		for n := s.head; n != nil; n = n.next {
			if n == s.precursor {
				found = true
				break
			}
		}
		if !found {
			return invariant.Report("precursor not in list")
		}

		if s.precursor == s.tail && s.cursor != nil {
			return invariant.Report("precursor is tail while there is a current element")
		}
		if s.cursor != s.precursor.next {
			return invariant.Report("cursor is not the node after precursor")
		}
	} else if s.cursor != nil && s.cursor != s.head {
		return invariant.Report("cursor is not head while precursor is nil")
	}

	return nil
}
