// Package rxtext is a []rune/string convenience layer over the generic
// rxcomb core, analogous to how coregx-coregex's Regex wraps its byte-
// oriented engine with string-flavored methods (FindString, MatchString)
// on top of the []byte-oriented core ([]byte wraps engine.Find).
package rxtext

import "github.com/coregx/rxcomb"

// Literal builds a term matching the exact string s, yielding s back on
// success.
func Literal(s string) rxcomb.Term[rune, string] {
	return rxcomb.Map(func(rs []rune) string { return string(rs) }, rxcomb.String([]rune(s)))
}

// Runes builds a term matching the exact rune sequence xs, yielding it.
func Runes(xs []rune) rxcomb.Term[rune, []rune] {
	return rxcomb.String(xs)
}

// MatchString numbers and runs t against the runes of s, the same
// full-input semantics rxcomb.Match provides for a generic symbol type.
func MatchString[A any](t rxcomb.Term[rune, A], s string) (A, bool) {
	return rxcomb.Match(t, []rune(s))
}

// MatchStringWithConfig is MatchString with explicit performance tuning.
func MatchStringWithConfig[A any](cfg rxcomb.Config, t rxcomb.Term[rune, A], s string) (A, bool) {
	return rxcomb.MatchWithConfig(cfg, t, []rune(s))
}
