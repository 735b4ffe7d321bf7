// match.go is the top-level entry point (SPEC_FULL.md §4.4) and the public
// Config surface (SPEC_FULL.md §6), grounded on coregx-coregex's
// meta.Config/meta.DefaultConfig pattern — narrowed to the one knob that
// matters for a single-strategy thread simulator: pre-allocation capacity.
package rxcomb

import (
	"github.com/coregx/rxcomb/internal/engine"
	"github.com/coregx/rxcomb/internal/numbering"
)

// Config controls the evaluator's performance characteristics. Unlike the
// teacher's meta.Config, which selects among several execution strategies
// (NFA, Lazy DFA, prefilter), this engine has exactly one strategy — the
// thread simulation of SPEC_FULL.md §4.3 — so Config exposes only the
// tuning knob that still applies: how much to pre-allocate before the term's
// own Symbol count is known to be larger.
type Config struct {
	// MinCapacity floors the pre-allocated size of the ThreadID dedup set,
	// which is otherwise sized to the term's Symbol count. The per-step
	// thread queue is not pre-sized from it.
	//
	// Default: 16.
	MinCapacity int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	cfg := engine.DefaultConfig()
	return Config{MinCapacity: cfg.MinCapacity}
}

func (c Config) toEngineConfig() engine.Config {
	return engine.Config{MinCapacity: c.MinCapacity}
}

// Match numbers t, drives the NFA evaluation core over xs symbol by symbol,
// and returns the value carried by the highest-priority Accept thread once
// every symbol of xs has been consumed, or ok=false if no thread accepted.
//
// xs is consumed exactly once, in order; the match is always against the
// entire input (spec.md §6 "Implicit anchoring").
func Match[S, A any](t Term[S, A], xs []S) (A, bool) {
	return MatchWithConfig(DefaultConfig(), t, xs)
}

// MatchWithConfig is Match with explicit performance tuning.
func MatchWithConfig[S, A any](cfg Config, t Term[S, A], xs []S) (A, bool) {
	numbered, count := numbering.Number(t.node)

	input := make([]any, len(xs))
	for i, x := range xs {
		input[i] = x
	}

	result, ok := engine.Run(cfg.toEngineConfig(), numbered, input, count)
	if !ok {
		var zero A
		return zero, false
	}
	return result.(A), true
}
