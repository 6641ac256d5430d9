// Package jit installs generated AArch64 machine code into executable
// memory and invokes it.
//
// This is the one component spec.md describes with no analogue in the
// teacher repo (which writes ELF files instead of JIT-ing in process).
// The OS-facing half is factored behind the Loader interface so the
// parser and code generator can be exercised in tests without mapping
// real executable memory, and so a mock loader can check generated code
// against a golden byte sequence.
package jit

import (
	"github.com/lcox74/bfcc-arm64/internal/codegen"
	"github.com/lcox74/bfcc-arm64/internal/ir"
)

// Loader maps a block of native code into memory, transitions it to
// executable, invokes it with the tape's base address in the first
// argument register, and releases the mapping.
//
// Only failures of the loader itself are reported (an unusable tape, or
// mmap/mprotect/munmap failing); per spec.md's error
// taxonomy, syscall failures inside the compiled code itself are never
// observed at this layer — the emitted code does not inspect its own
// syscall return values.
type Loader interface {
	Run(code []byte, tape []byte) error
}

// CompileAndRun generates native code for ops and runs it against a
// freshly zero-initialized tape via loader.
func CompileAndRun(loader Loader, ops []ir.Op) error {
	code := codegen.NewGenerator(ops).Generate()
	tape := make([]byte, ir.TapeSize)
	return loader.Run(code, tape)
}
