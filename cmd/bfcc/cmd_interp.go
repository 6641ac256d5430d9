package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lcox74/bfcc-arm64/internal/ir"
	"github.com/lcox74/bfcc-arm64/internal/vm"
)

// cmdInterp runs the program through the reference interpreter instead
// of the JIT — useful for oracle comparisons and on hosts where JIT-ing
// AArch64 isn't meaningful.
func cmdInterp(args []string) {
	fs := flag.NewFlagSet("interp", flag.ExitOnError)
	optLevel := fs.Int("O", 2, "optimization level (no-op, kept for interface parity)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: bfcc interp [-O level] <file>")
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

	interpreter := vm.NewVM(vm.WithInput(os.Stdin), vm.WithOutput(os.Stdout))
	if err := interpreter.Run(ops); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
