package main

import (
	"strconv"

	"github.com/coregx/rxcomb"
)

// pattern bundles a labeled term with a renderer for its result, so the
// REPL can report which of the battery matched without type-switching on
// A at the call site.
type pattern struct {
	name  string
	match func(line string) (string, bool)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func digitsOf[A any](t rxcomb.Term[rune, A]) func(string) (A, bool) {
	return func(s string) (A, bool) {
		return rxcomb.Match(t, []rune(s))
	}
}

func newBattery() []pattern {
	digitRun := rxcomb.Map(func(ds []rune) string { return string(ds) },
		rxcomb.Some(rxcomb.Psym(isDigit)))

	letterRun := rxcomb.Some(rxcomb.Psym(isLetter))
	innerThenClose := rxcomb.App(
		rxcomb.Map(func(inner []rune) func(rune) string {
			return func(rune) string { return string(inner) }
		}, letterRun),
		rxcomb.Sym(')'),
	)
	parenGroup := rxcomb.App(
		rxcomb.Map(func(rune) func(string) string {
			return func(inner string) string { return inner }
		}, rxcomb.Sym('(')),
		innerThenClose,
	)

	greedyAs := rxcomb.ReFoldl(rxcomb.Greedy, func(acc int, _ rune) int { return acc + 1 }, 0, rxcomb.Sym('a'))
	nonGreedyAs := rxcomb.ReFoldl(rxcomb.NonGreedy, func(acc int, _ rune) int { return acc + 1 }, 0, rxcomb.Sym('a'))

	intVal := func(s string) (string, bool) {
		v, ok := digitsOf(digitRun)(s)
		return v, ok
	}

	return []pattern{
		{"digits", intVal},
		{"parenGroup", digitsOf(parenGroup)},
		{"greedy 'a' count", func(s string) (string, bool) {
			n, ok := digitsOf(greedyAs)(s)
			if !ok {
				return "", false
			}
			return strconv.Itoa(n), true
		}},
		{"non-greedy 'a' count (full-input forces same result)", func(s string) (string, bool) {
			n, ok := digitsOf(nonGreedyAs)(s)
			if !ok {
				return "", false
			}
			return strconv.Itoa(n), true
		}},
	}
}
