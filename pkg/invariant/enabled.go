//go:build invariants

package invariant

// Enabled turns on the entry/exit structural checks of every mutating
// collection operation.
const Enabled = true
