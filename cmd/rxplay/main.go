// Command rxplay is an interactive demo of the rxcomb combinator surface:
// it reads one line at a time and reports which term in a small fixed
// battery accepts it and with what value, the same read-eval-print shape
// client9-cardinal's cmd/cardinal uses for its s-expression evaluator,
// narrowed to a single "try every candidate term" evaluation step.
package main

import (
	"fmt"
	"os"
)

func main() {
	r := NewREPL()
	if err := r.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "rxplay:", err)
		os.Exit(1)
	}
}
