package ring

import (
	"github.com/snwfog/sequence.go/pkg/invariant"
)

// WellFormed verifies the ring structure:
//   - tail is set and no link on the way around is missing
//   - following next from tail returns to tail, not to some other node;
//     checked with a tortoise and hare walk that stops at the first
//     missing link, at a meeting of both pointers, or when the hare
//     reaches tail again
//   - the node after tail is the sentinel and no other node is
//   - the ring holds exactly count+1 nodes
//
// It returns nil or an error wrapping invariant.ErrCorrupt.
func (r *Ring[T]) WellFormed() error {
	if r.tail == nil {
		return invariant.Report("tail is nil")
	}
	if r.tail.next == nil {
		return invariant.Report("tail links to nil")
	}

	slow, fast := r.tail, r.tail.next
	for {
		if fast == nil || fast.next == nil {
			return invariant.Report("found nil link")
		}
		if fast == r.tail || fast.next == r.tail {
			break
		}

		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return invariant.Report("ring does not close on tail")
		}
	}

	if !r.tail.next.sentinel {
		return invariant.Report("tail not linked to sentinel")
	}

	nodes := 1
	for n := r.tail.next; n != r.tail; n = n.next {
		if n.sentinel && n != r.tail.next {
			return invariant.Report("more than one sentinel")
		}
		nodes++
	}
	if r.tail.sentinel && r.tail != r.tail.next {
		return invariant.Report("more than one sentinel")
	}

	if nodes != r.count+1 {
		return invariant.Report("ring holds %d nodes, count is %d", nodes, r.count)
	}

	return nil
}
