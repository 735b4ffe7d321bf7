// Package term implements the erased term representation of a regex.
//
// Term[S, A] in the public package is a thin generic wrapper around *Node:
// correctness of the S/A type parameters is the public builder API's job,
// not this package's — Node itself carries values as `any`, the same
// "erase internally, type strongly at the boundary" trade a GADT-free
// language forces (see SPEC_FULL.md §3).
package term

import "fmt"

// ThreadID identifies a Symbol node. Unassigned is the placeholder id set
// by the builder constructors below; a numbering pass must replace it with
// a non-negative, globally unique id before a Node is ever evaluated.
type ThreadID int32

// Unassigned marks a Symbol node that has not yet been through numbering.
const Unassigned ThreadID = -1

// RepMode controls priority tie-breaking for Rep, not the language matched.
type RepMode int

const (
	// Greedy prefers another iteration of the repeated term over stopping.
	Greedy RepMode = iota
	// NonGreedy prefers stopping over another iteration.
	NonGreedy
)

func (m RepMode) String() string {
	if m == NonGreedy {
		return "NonGreedy"
	}
	return "Greedy"
}

// Kind discriminates the cases of Node, mirroring the Term tags of
// SPEC_FULL.md §3.
type Kind uint8

const (
	KindEps Kind = iota
	KindSymbol
	KindAlt
	KindApp
	KindFmap
	KindFail
	KindRep
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindEps:
		return "Eps"
	case KindSymbol:
		return "Symbol"
	case KindAlt:
		return "Alt"
	case KindApp:
		return "App"
	case KindFmap:
		return "Fmap"
	case KindFail:
		return "Fail"
	case KindRep:
		return "Rep"
	case KindVoid:
		return "Void"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Pred is an erased symbol predicate: given an input symbol (boxed as any),
// it returns the value the Symbol node produces, or ok=false if the symbol
// is rejected.
type Pred func(sym any) (value any, ok bool)

// Fold is an erased repetition fold: combines the running accumulator with
// one more result from the repeated term.
type Fold func(acc, next any) any

// Node is the erased regex term tree. Only the fields relevant to Kind are
// populated; the rest are left zero, the same discriminated-struct shape as
// coregx-coregex's nfa.State (one struct, a Kind tag, fields valid per-kind).
type Node struct {
	Kind Kind

	// KindSymbol
	ID   ThreadID
	Pred Pred

	// KindAlt, KindApp: Left/Right. For App, Left is the function term,
	// Right is the argument term.
	Left, Right *Node

	// KindFmap, KindVoid: Child plus (for Fmap) the transform.
	Child  *Node
	FmapFn func(any) any

	// KindRep
	RepMode  RepMode
	RepFold  Fold
	RepZero  any
	RepChild *Node
}

// Eps builds a node matching the empty input, yielding the unit value
// (represented as struct{}{}).
func Eps() *Node { return &Node{Kind: KindEps} }

// Fail builds a node matching nothing.
func Fail() *Node { return &Node{Kind: KindFail} }

// Symbol builds a node that consumes one input symbol accepted by p.
// Its ThreadID is Unassigned until a numbering pass runs.
func Symbol(p Pred) *Node {
	return &Node{Kind: KindSymbol, ID: Unassigned, Pred: p}
}

// Alt builds a left-biased alternation of l and r.
func Alt(l, r *Node) *Node {
	return &Node{Kind: KindAlt, Left: l, Right: r}
}

// App builds the concatenation of f (a term producing a function) and x
// (a term producing that function's argument).
func App(f, x *Node) *Node {
	return &Node{Kind: KindApp, Left: f, Right: x}
}

// Fmap builds a node matching t and transforming its result with h.
func Fmap(h func(any) any, t *Node) *Node {
	return &Node{Kind: KindFmap, Child: t, FmapFn: h}
}

// Void builds a node matching t and discarding its result.
func Void(t *Node) *Node {
	return &Node{Kind: KindVoid, Child: t}
}

// Rep builds a repetition of t, folding each iteration's result into an
// accumulator starting at zero, with priority order controlled by mode.
func Rep(mode RepMode, fold Fold, zero any, t *Node) *Node {
	return &Node{Kind: KindRep, RepMode: mode, RepFold: fold, RepZero: zero, RepChild: t}
}
