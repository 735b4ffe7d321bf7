package rxcomb

import "github.com/coregx/rxcomb/internal/term"

// Term represents a regular expression over symbols of type S that, on a
// successful match, yields a value of type A.
//
// Term values are immutable after construction; build them with the
// combinators in this package (Eps, Fail, Psym, Msym, Sym, AnySym, String,
// Map, App, Alt, Void, Many, Some, ReFoldl) and run them with Match.
type Term[S, A any] struct {
	node *term.Node
}

// RepMode controls priority tie-breaking for ReFoldl-based repetition, not
// the language a term recognizes (spec.md §3).
type RepMode int

const (
	// Greedy prefers another iteration of the repeated term over stopping.
	// Many and Some are always Greedy.
	Greedy RepMode = RepMode(term.Greedy)
	// NonGreedy prefers stopping over another iteration, except where a
	// full-input match requires consuming more (spec.md §8 scenario 8).
	NonGreedy RepMode = RepMode(term.NonGreedy)
)

func (m RepMode) String() string {
	return term.RepMode(m).String()
}
