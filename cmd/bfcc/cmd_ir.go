package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lcox74/bfcc-arm64/internal/ir"
)

// cmdIR dumps the optimized IR for a source file.
func cmdIR(args []string) {
	fs := flag.NewFlagSet("ir", flag.ExitOnError)
	optLevel := fs.Int("O", 0, "optimization level (no-op, kept for interface parity)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: bfcc ir [-O level] <file>")
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

	fmt.Print(ir.Dump(ops))
}
