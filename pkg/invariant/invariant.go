// Package invariant holds the error taxonomy shared by the linked
// collections and the helpers their structural checkers report through.
package invariant

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIllegalState is a precondition violation: the call is not valid
	// in the collection's current state.
	ErrIllegalState = errors.New("illegal state")

	ErrNoSuchElement = errors.New("no such element")

	// ErrConcurrentModification is returned by an iterator whose version
	// no longer matches the live collection.
	ErrConcurrentModification = errors.New("concurrent modification")

	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCorrupt reports a broken structural invariant.
	ErrCorrupt = errors.New("invariant error")
)

// Report returns an ErrCorrupt describing the violated property.
func Report(format string, args ...interface{}) error {
	return errors.Wrap(ErrCorrupt, fmt.Sprintf(format, args...))
}

// Assert panics if err is non nil. where names the check site,
// e.g. "start of add".
func Assert(err error, where string) {
	if err == nil {
		return
	}

	panic(errors.Wrapf(err, "invariant failed at %s", where))
}

// IsCorrupt reports whether err came from a structural check.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrCorrupt)
}
