package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lcox74/bfcc-arm64/internal/codegen"
	"github.com/lcox74/bfcc-arm64/internal/ir"
)

// cmdAsm prints a mnemonic-per-instruction listing of the AArch64 code
// that would be generated for a source file. This is a reading aid, not
// assembleable syntax — the repo has no AArch64 assembler backend, only
// the JIT path emits real machine code.
func cmdAsm(args []string) {
	fs := flag.NewFlagSet("asm", flag.ExitOnError)
	optLevel := fs.Int("O", 2, "optimization level (no-op, kept for interface parity)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: bfcc asm [-O level] <file>")
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

	fmt.Print(codegen.Disassemble(ops))
}
