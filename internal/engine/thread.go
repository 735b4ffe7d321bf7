package engine

import "github.com/coregx/rxcomb/internal/term"

// Cont is a continuation: given the value a finished subterm produced, it
// returns the list of successor threads waiting on whatever comes next.
// This is the boxed-closure realization of SPEC_FULL.md §3's "Continuation".
type Cont func(value any) []Thread

// Thread is either Live (waiting to consume one input symbol) or an Accept
// carrying a finished result, mirroring spec.md §3's Thread union.
type Thread struct {
	Accept bool
	Value  any // valid when Accept

	ID   term.ThreadID // valid when !Accept
	Cont Cont           // valid when !Accept: called with the next input symbol
}
