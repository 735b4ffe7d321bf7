// Package engine is the NFA evaluation core (SPEC_FULL.md §4.3): it compiles
// a numbered term plus a continuation into a thread list, and advances that
// list one input symbol at a time, carrying semantic values along each live
// thread exactly as spec.md §3/§4.3 describe.
//
// Grounded on coregx-coregex's nfa/pikevm.go PikeVM: addThread's epsilon-closure
// under a visited set corresponds to Compile below, and step/addThreadToNext's
// per-byte consumption-into-next-generation corresponds to Run's per-symbol
// loop body. PikeVM dedups by StateID using internal/sparse; this
// engine dedups by ThreadID using the same package, adapted to a generic
// symbol universe.
package engine

import (
	"github.com/coregx/rxcomb/internal/conv"
	"github.com/coregx/rxcomb/internal/sparse"
	"github.com/coregx/rxcomb/internal/term"
)

// Compile realizes SPEC_FULL.md §4.3's "Compilation to threads": given a
// numbered term n and a continuation k, it returns the thread list produced
// by the term's epsilon-closure under k, in priority order (left-biased,
// greedy-or-non-greedy per each Rep node it passes through).
//
// Compile does not deduplicate its result — callers run Dedup over it, the
// same separation spec.md §4.3 draws between "Compilation to threads" and
// the subsequent "Deduplicate" step.
func Compile(n *term.Node, k Cont) []Thread {
	switch n.Kind {
	case term.KindEps:
		return k(struct{}{})

	case term.KindFail:
		return nil

	case term.KindSymbol:
		if n.ID == term.Unassigned {
			panic(&PreconditionError{Detail: "Symbol node missing ThreadID", Err: ErrUnnumbered})
		}
		pred := n.Pred
		return []Thread{{
			ID: n.ID,
			Cont: func(sym any) []Thread {
				if a, ok := pred(sym); ok {
					return k(a)
				}
				return nil
			},
		}}

	case term.KindAlt:
		left := Compile(n.Left, k)
		right := Compile(n.Right, k)
		return appendThreads(left, right)

	case term.KindApp:
		return Compile(n.Left, func(f any) []Thread {
			fn := f.(func(any) any)
			return Compile(n.Right, func(arg any) []Thread {
				return k(fn(arg))
			})
		})

	case term.KindFmap:
		h := n.FmapFn
		return Compile(n.Child, func(a any) []Thread {
			return k(h(a))
		})

	case term.KindVoid:
		return Compile(n.Child, func(any) []Thread {
			return k(struct{}{})
		})

	case term.KindRep:
		return compileRep(n, k)

	default:
		return nil
	}
}

// compileRep realizes the Rep case of SPEC_FULL.md §4.3:
//
//	loop(acc):
//	  iterate: threads of t with continuation a -> loop(fold(acc, a))
//	  stop:    k(acc)
//	priority: iterate before stop when Greedy, after stop when NonGreedy.
//
// The expanding guard implements spec.md §9's suggested fix for a Rep body
// that accepts the empty string: loop's only possible reentrant call (within
// the same synchronous Compile invocation, before loop's first call has
// returned) can only happen via a zero-width path through n.RepChild, since
// any path that consumes a symbol returns a Live Thread instead of calling
// k/loop synchronously. Reentry is therefore exactly the "this iteration
// produced the same state as before" fixed point spec.md §9 describes, and
// the loop is cut by resolving immediately with the reentrant accumulator.
func compileRep(n *term.Node, k Cont) []Thread {
	expanding := false
	var loop func(acc any) []Thread
	loop = func(acc any) []Thread {
		if expanding {
			return k(acc)
		}
		expanding = true

		iterate := func() []Thread {
			return Compile(n.RepChild, func(a any) []Thread {
				return loop(n.RepFold(acc, a))
			})
		}
		stop := func() []Thread {
			return k(acc)
		}

		var result []Thread
		if n.RepMode == term.Greedy {
			result = appendThreads(iterate(), stop())
		} else {
			result = appendThreads(stop(), iterate())
		}

		expanding = false
		return result
	}
	return loop(n.RepZero)
}

func appendThreads(a, b []Thread) []Thread {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]Thread, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Dedup walks threads in priority order and drops any Live thread whose
// ThreadID has already been seen, keeping the left-most (highest priority)
// occurrence. Accept threads are always kept, per spec.md §4.3 step 2.
func Dedup(threads []Thread, seen *sparse.Set) []Thread {
	seen.Clear()
	out := make([]Thread, 0, len(threads))
	for _, t := range threads {
		if t.Accept {
			out = append(out, t)
			continue
		}
		if seen.Insert(conv.IntToUint32(int(t.ID))) {
			out = append(out, t)
		}
	}
	return out
}

// acceptCont is the identity top-level continuation used to start a match:
// a finished value immediately becomes an Accept thread.
func acceptCont(v any) []Thread {
	return []Thread{{Accept: true, Value: v}}
}

// Run performs SPEC_FULL.md §4.4's top-level match loop over a numbered
// term: build the initial (deduplicated) thread list, then step once per
// input symbol, and return the first Accept in the final list's priority
// order. symbolCount bounds the dedup set (it is the number of Symbol
// nodes in the numbered term, i.e. the maximum possible live-thread count
// per step, per spec.md §5).
func Run(cfg Config, n *term.Node, input []any, symbolCount int) (any, bool) {
	capacity := symbolCount
	if capacity < cfg.MinCapacity {
		capacity = cfg.MinCapacity
	}
	seen := sparse.New(conv.IntToUint32(capacity))

	queue := Dedup(Compile(n, acceptCont), seen)

	for _, sym := range input {
		var produced []Thread
		for _, t := range queue {
			if t.Accept {
				continue
			}
			produced = appendThreads(produced, t.Cont(sym))
		}
		queue = Dedup(produced, seen)
	}

	for _, t := range queue {
		if t.Accept {
			return t.Value, true
		}
	}
	return nil, false
}
