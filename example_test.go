package rxcomb_test

import (
	"fmt"

	"github.com/coregx/rxcomb"
)

// ExampleMatch demonstrates parsing a run of digits into an int.
func ExampleMatch() {
	digits := rxcomb.Some(rxcomb.Psym(func(r rune) bool { return r >= '0' && r <= '9' }))
	n := rxcomb.Map(func(ds []rune) int {
		v := 0
		for _, d := range ds {
			v = v*10 + int(d-'0')
		}
		return v
	}, digits)

	v, ok := rxcomb.Match(n, []rune("42"))
	fmt.Println(v, ok)
	// Output: 42 true
}

// ExampleAlt demonstrates left-biased alternation between two string
// literals tagged with their own values.
func ExampleAlt() {
	two := rxcomb.Map(func([]rune) int { return 2 }, rxcomb.String([]rune("two")))
	one := rxcomb.Map(func([]rune) int { return 1 }, rxcomb.String([]rune("one")))
	numberWord := rxcomb.Alt(two, one)

	v, ok := rxcomb.Match(numberWord, []rune("one"))
	fmt.Println(v, ok)
	// Output: 1 true
}

// ExampleMany demonstrates matching zero or more repetitions.
func ExampleMany() {
	as := rxcomb.Many(rxcomb.Sym('a'))

	v, ok := rxcomb.Match(as, []rune("aaa"))
	fmt.Println(string(v), ok)
	// Output: aaa true
}

// ExampleSome demonstrates that Some requires at least one match.
func ExampleSome() {
	as := rxcomb.Some(rxcomb.Sym('a'))

	_, ok := rxcomb.Match(as, nil)
	fmt.Println(ok)
	// Output: false
}

// ExampleApp demonstrates sequencing two terms and combining their values.
func ExampleApp() {
	greeting := rxcomb.App(rxcomb.Map(func(first []rune) func([]rune) string {
		return func(second []rune) string { return string(first) + " " + string(second) }
	}, rxcomb.String([]rune("hello"))), rxcomb.String([]rune("world")))

	v, ok := rxcomb.Match(greeting, []rune("helloworld"))
	fmt.Println(v, ok)
	// Output: hello world true
}
