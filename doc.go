// Package rxcomb implements an applicative regular expression engine:
// regexes are first-class values built by algebraic composition (Map, App,
// Alt, repetition) over a generic symbol type, matched against a finite
// input sequence by a Thompson-style NFA simulation that carries a typed
// semantic value on every live thread — not merely a boolean or a list of
// captured substrings.
//
// A Term[S, A] describes how to recognize a sequence of symbols of type S
// and, on a successful match, produce a value of type A. Terms are
// immutable once built and therefore safe to share across concurrent Match
// calls on different inputs, the same guarantee compiled *Regex values make
// in byte-oriented engines.
//
// Basic usage:
//
//	digits := rxcomb.Some(rxcomb.Psym(func(r rune) bool { return r >= '0' && r <= '9' }))
//	n := rxcomb.Map(func(ds []rune) int {
//	    v := 0
//	    for _, d := range ds {
//	        v = v*10 + int(d-'0')
//	    }
//	    return v
//	}, digits)
//
//	v, ok := rxcomb.Match(n, []rune("42"))
//	// v == 42, ok == true
//
// Matching is always against the entire input sequence — there is no
// partial-prefix match at the top level (§6 "Implicit anchoring").
//
// Limitations (by design, see SPEC_FULL.md "Non-goals"): no backreferences,
// no lookaround, no anchors other than implicit full-input match, no
// streaming over infinite input, no Unicode-aware character classes (the
// symbol type is generic and opaque), no compilation to a DFA.
package rxcomb
