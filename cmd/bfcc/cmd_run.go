package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lcox74/bfcc-arm64/internal/ir"
	"github.com/lcox74/bfcc-arm64/internal/jit"
)

// cmdRun JIT-compiles the program and executes it natively.
func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	optLevel := fs.Int("O", 2, "optimization level (no-op, kept for interface parity)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: bfcc run [-O level] <file>")
		fs.PrintDefaults()
		os.Exit(exitWrongArgCount)
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
	}
	parseOptLevel(*optLevel)

	file := filepath.Clean(fs.Arg(0))
	src := readSource(file)

	ops, err := ir.Parse(ir.Tokenize(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUnbalancedBracket)
	}

	if err := jit.CompileAndRun(jit.NewUnixLoader(), ops); err != nil {
		// mmap/mprotect/munmap failures are fatal per the loader's
		// contract; the process aborts rather than retrying.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
