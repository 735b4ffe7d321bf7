// combinators.go is the public combinator surface (SPEC_FULL.md §4.1). Each
// constructor wraps internal/term's erased Node, converting between the
// statically-typed A/B/S generics at the package boundary and the untyped
// any payloads the engine carries — the "erase internally, type strongly at
// the boundary" approach SPEC_FULL.md §3 calls for in a language without
// GADTs.
//
// Grounded on coregx-coregex's regex.go: a thin typed wrapper (Regex) around an
// untyped engine (*meta.Engine), with every public constructor delegating
// straight to the internal layer after a narrow conversion step.
package rxcomb

import "github.com/coregx/rxcomb/internal/term"

// Eps matches the empty input and yields the unit value.
func Eps[S any]() Term[S, struct{}] {
	return Term[S, struct{}]{node: term.Eps()}
}

// Fail matches nothing.
func Fail[S, A any]() Term[S, A] {
	return Term[S, A]{node: term.Fail()}
}

// Msym matches a single symbol for which p returns a value, and yields that
// value. This is the most general symbol combinator; Psym, Sym, and AnySym
// are defined in terms of it.
func Msym[S, A any](p func(S) (A, bool)) Term[S, A] {
	node := term.Symbol(func(sym any) (any, bool) {
		v, ok := p(sym.(S))
		if !ok {
			var zero A
			return zero, false
		}
		return v, true
	})
	return Term[S, A]{node: node}
}

// Psym matches a single symbol passing p, yielding that symbol.
func Psym[S any](p func(S) bool) Term[S, S] {
	return Msym(func(s S) (S, bool) {
		if p(s) {
			return s, true
		}
		var zero S
		return zero, false
	})
}

// Sym matches exactly the symbol x, yielding it.
func Sym[S comparable](x S) Term[S, S] {
	return Psym(func(s S) bool { return s == x })
}

// AnySym matches any single symbol, yielding it.
func AnySym[S any]() Term[S, S] {
	return Psym(func(S) bool { return true })
}

// Map transforms t's result with h.
func Map[S, A, B any](h func(A) B, t Term[S, A]) Term[S, B] {
	node := term.Fmap(func(a any) any {
		return h(a.(A))
	}, t.node)
	return Term[S, B]{node: node}
}

// App matches the concatenation of f then x; the result is f's function
// value applied to x's value.
//
// f's erased result is wrapped here into a uniform func(any) any shape so
// that internal/engine never needs to know the concrete A/B types — this is
// the one place the "type erased internally, typed at the boundary" design
// note is load-bearing: without this wrap, the engine would need a type
// assertion to the exact func(A) B signature, which it cannot name.
func App[S, A, B any](f Term[S, func(A) B], x Term[S, A]) Term[S, B] {
	wrappedF := term.Fmap(func(raw any) any {
		fn := raw.(func(A) B)
		return func(arg any) any {
			return fn(arg.(A))
		}
	}, f.node)
	node := term.App(wrappedF, x.node)
	return Term[S, B]{node: node}
}

// Alt matches l or r; if both would match the same input, l's result wins
// (left-biased).
func Alt[S, A any](l, r Term[S, A]) Term[S, A] {
	return Term[S, A]{node: term.Alt(l.node, r.node)}
}

// Void matches t and discards its result.
func Void[S, A any](t Term[S, A]) Term[S, struct{}] {
	return Term[S, struct{}]{node: term.Void(t.node)}
}

// ReFoldl is the general repetition combinator: zero or more repetitions of
// t, folding each iteration's result into an accumulator that starts at z,
// with priority order controlled by mode.
func ReFoldl[S, A, B any](mode RepMode, fold func(B, A) B, z B, t Term[S, A]) Term[S, B] {
	node := term.Rep(term.RepMode(mode), func(acc, next any) any {
		return fold(acc.(B), next.(A))
	}, any(z), t.node)
	return Term[S, B]{node: node}
}

// Many greedily matches zero or more repetitions of t, returning the
// matched values in input order.
func Many[S, A any](t Term[S, A]) Term[S, []A] {
	return ReFoldl(Greedy, func(acc []A, a A) []A {
		return append(append([]A{}, acc...), a)
	}, []A{}, t)
}

// Some greedily matches one or more repetitions of t, returning the matched
// values in input order. Some(t) never matches the empty input.
func Some[S, A any](t Term[S, A]) Term[S, []A] {
	return App(Map(func(first A) func([]A) []A {
		return func(rest []A) []A {
			return append([]A{first}, rest...)
		}
	}, t), Many(t))
}

// String matches the exact sequence xs, yielding it.
func String[S comparable](xs []S) Term[S, []S] {
	acc := Map(func(struct{}) []S { return []S{} }, Eps[S]())
	for _, x := range xs {
		sx := Sym(x)
		acc = App(Map(func(prefix []S) func(S) []S {
			return func(s S) []S {
				return append(append([]S{}, prefix...), s)
			}
		}, acc), sx)
	}
	return acc
}
