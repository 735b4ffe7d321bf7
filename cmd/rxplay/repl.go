package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lmorg/readline/v4"
	"golang.org/x/term"
)

// REPL reads lines of input and matches each one against a fixed battery
// of example rxcomb terms, printing whichever one accepts it.
type REPL struct {
	battery []pattern
	input   io.Reader
	output  io.Writer
}

// NewREPL creates a REPL reading from stdin and writing to stdout.
func NewREPL() *REPL {
	return &REPL{
		battery: newBattery(),
		input:   os.Stdin,
		output:  os.Stdout,
	}
}

// NewREPLWithIO creates a REPL with explicit input/output, for tests.
func NewREPLWithIO(input io.Reader, output io.Writer) *REPL {
	return &REPL{
		battery: newBattery(),
		input:   input,
		output:  output,
	}
}

func (r *REPL) isInteractive() bool {
	if r.input == os.Stdin {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
	return false
}

// Run starts the read loop, using a line editor when stdin is a terminal
// and a plain scanner otherwise.
func (r *REPL) Run() error {
	if r.isInteractive() {
		return r.runInteractive()
	}
	return r.runScanner()
}

func (r *REPL) runInteractive() error {
	rl := readline.NewInstance()
	rl.SetPrompt("rxplay> ")

	for {
		line, err := rl.Readline()
		if err != nil {
			return err
		}
		if r.handleLine(strings.TrimSpace(line)) {
			return nil
		}
	}
}

func (r *REPL) runScanner() error {
	scanner := bufio.NewScanner(r.input)
	for scanner.Scan() {
		if r.handleLine(strings.TrimSpace(scanner.Text())) {
			return nil
		}
	}
	return scanner.Err()
}

// handleLine processes one line of input, returning true if the REPL
// should stop.
func (r *REPL) handleLine(line string) bool {
	switch line {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		r.printHelp()
		return false
	}

	for _, p := range r.battery {
		if v, ok := p.match(line); ok {
			_, _ = fmt.Fprintf(r.output, "%s -> %s\n", p.name, v)
			return false
		}
	}
	_, _ = fmt.Fprintf(r.output, "no match\n")
	return false
}

func (r *REPL) printHelp() {
	_, _ = fmt.Fprint(r.output, `
rxplay — try a line of input against a small battery of rxcomb terms:

  digits                          a run of one or more ASCII digits
  parenGroup                      a letter run wrapped in (parentheses)
  greedy 'a' count                zero or more 'a's, greedily counted
  non-greedy 'a' count             same, but non-greedy priority order

Type "quit" or "exit" to leave.
`)
}
