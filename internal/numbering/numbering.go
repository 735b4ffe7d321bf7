// Package numbering implements the pass that assigns every Symbol leaf of a
// term tree a globally unique ThreadID, by a monotonically increasing
// counter over a pre-order traversal (SPEC_FULL.md §4.2).
//
// Grounded on the id := StateID(len(b.states)) counter idiom used throughout
// coregx-coregex's nfa/builder.go Add* methods: here the "append" step is
// implicit (we don't build a state list, we stamp the Symbol node in place
// on a fresh copy of the tree) but the counter discipline is the same.
package numbering

import "github.com/coregx/rxcomb/internal/term"

// Number returns a structurally identical copy of n in which every Symbol
// node has been assigned a fresh, unique ThreadID, and reports how many
// Symbol nodes were numbered (the bound on live threads per step, per
// SPEC_FULL.md §5).
//
// Non-Symbol nodes are copied unchanged in shape; the result is a new tree
// so that numbering the same source term twice (e.g. two concurrent Match
// calls) never races on shared state.
func Number(n *term.Node) (*term.Node, int) {
	next := term.ThreadID(0)
	out := number(n, &next)
	return out, int(next)
}

func number(n *term.Node, next *term.ThreadID) *term.Node {
	if n == nil {
		return nil
	}

	out := *n // shallow copy; only fields this function rewrites change

	switch n.Kind {
	case term.KindSymbol:
		out.ID = *next
		*next++

	case term.KindAlt, term.KindApp:
		out.Left = number(n.Left, next)
		out.Right = number(n.Right, next)

	case term.KindFmap, term.KindVoid:
		out.Child = number(n.Child, next)

	case term.KindRep:
		out.RepChild = number(n.RepChild, next)

	case term.KindEps, term.KindFail:
		// no children, nothing to number

	}

	return &out
}
