package codegen

import (
	"testing"

	"github.com/lcox74/bfcc-arm64/internal/ir"
)

func mustParse(t *testing.T, src string) []ir.Op {
	t.Helper()
	ops, err := ir.Parse(ir.Tokenize([]byte(src)))
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return ops
}

func TestEmptyProgramIsJustPrologueAndEpilogue(t *testing.T) {
	code := NewGenerator(nil).Generate()
	if len(code) != ir.PrologueSize+ir.EpilogueSize {
		t.Fatalf("len(code) = %d, want %d", len(code), ir.PrologueSize+ir.EpilogueSize)
	}
}

func TestGeneratedLengthMatchesDeclaredSizes(t *testing.T) {
	ops := mustParse(t, "++>>,.[-]+[->+<]")
	code := NewGenerator(ops).Generate()

	want := ir.PrologueSize + ir.EpilogueSize
	for _, op := range ops {
		want += op.Kind.Size()
	}
	if len(code) != want {
		t.Fatalf("len(code) = %d, want %d", len(code), want)
	}
}

func TestGeneratedLengthIsWholeInstructionWords(t *testing.T) {
	ops := mustParse(t, "+++[->+<]-.,")
	code := NewGenerator(ops).Generate()
	if len(code)%4 != 0 {
		t.Fatalf("len(code) = %d is not a multiple of 4", len(code))
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	ops := mustParse(t, "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.")
	a := NewGenerator(ops).Generate()
	b := NewGenerator(ops).Generate()
	if len(a) != len(b) {
		t.Fatalf("non-deterministic output length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic byte at %d: %x vs %x", i, a[i], b[i])
		}
	}
}

func TestLoopBranchesStayWithinGeneratedBuffer(t *testing.T) {
	ops := mustParse(t, "+[>-]")
	code := NewGenerator(ops).Generate()
	for _, op := range ops {
		if op.Kind == ir.OpLoopStart || op.Kind == ir.OpLoopEnd {
			if op.Arg < 0 || op.Arg > len(code) {
				t.Fatalf("branch target %d outside generated buffer of length %d", op.Arg, len(code))
			}
		}
	}
}
