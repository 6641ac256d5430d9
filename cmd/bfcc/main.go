// Command bfcc compiles and runs Brainfuck programs against a 64-bit
// ARM (AArch64) Mach/BSD-style target, either by JIT-compiling them to
// native machine code or by running them through the reference
// interpreter.
package main

import (
	"fmt"
	"os"
)

// Exit codes, per the external interface: 0 success, 1 wrong argument
// count, 2 file read failure, 3 unbalanced brackets.
const (
	exitOK                = 0
	exitWrongArgCount     = 1
	exitFileReadFailure   = 2
	exitUnbalancedBracket = 3
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: bfcc <command> [options] <file>

commands:
  run [-O level] <file>      JIT-compile and run the program
  interp [-O level] <file>   Run the program through the reference interpreter
  ir [-O level] <file>       Dump the optimized IR
  tokens <file>              Dump the token stream
  asm [-O level] <file>      Dump a mnemonic listing of the generated code`)
	os.Exit(exitWrongArgCount)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "run":
		cmdRun(args)
	case "interp":
		cmdInterp(args)
	case "ir":
		cmdIR(args)
	case "tokens":
		cmdTokens(args)
	case "asm":
		cmdAsm(args)
	default:
		usage()
	}
}

// parseOptLevel validates the -O flag shared by run/interp/ir/asm. The
// generator implements exactly one optimization pipeline, so the flag is
// kept only for interface parity with the level the user asked for and
// never changes what gets emitted.
func parseOptLevel(level int) int {
	switch level {
	case 0, 1, 2:
		return level
	default:
		fmt.Fprintf(os.Stderr, "invalid optimization level: %d (must be 0, 1, or 2)\n", level)
		os.Exit(exitWrongArgCount)
	}
	return 0
}

// readSource reads the source file, exiting with exitFileReadFailure and
// the error on stderr if that fails.
func readSource(file string) []byte {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFileReadFailure)
	}
	return src
}
