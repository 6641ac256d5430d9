package codegen

import (
	"fmt"
	"strings"

	"github.com/lcox74/bfcc-arm64/internal/ir"
)

// Disassemble renders a mnemonic-per-instruction listing of the code
// that Generate would produce for the same IR program. It is a reading
// aid for the `asm` CLI subcommand, not assembleable AArch64 syntax —
// this repo has no assembler backend, only the JIT path emits real
// machine code.
func Disassemble(ops []ir.Op) string {
	var b strings.Builder
	offset := ir.PrologueSize
	fmt.Fprintf(&b, "; prologue (%d bytes)\n", ir.PrologueSize)
	fmt.Fprintln(&b, "sub sp, sp, #16")
	fmt.Fprintln(&b, "stp x29, x30, [sp]")
	fmt.Fprintln(&b, "mov x8, x0")
	fmt.Fprintln(&b, "movz x9, #0")

	for _, op := range ops {
		fmt.Fprintf(&b, "; offset %d\n", offset)
		switch op.Kind {
		case ir.OpIncrement:
			fmt.Fprintln(&b, "add x11, x8, x9")
			fmt.Fprintln(&b, "ldrb w10, [x11, xzr]")
			fmt.Fprintf(&b, "add w10, w10, #%d\n", uint32(op.Arg)&0xfff)
			fmt.Fprintln(&b, "strb w10, [x11, xzr]")
		case ir.OpMove:
			disasmWrappedDelta(&b, "x9", "x9", op.Arg)
		case ir.OpInput:
			fmt.Fprintln(&b, "movz x0, #1")
			fmt.Fprintln(&b, "add x1, x8, x9")
			fmt.Fprintln(&b, "movz x2, #1")
			fmt.Fprintln(&b, "movz w16, #3")
			fmt.Fprintln(&b, "svc #0x80")
		case ir.OpOutput:
			fmt.Fprintln(&b, "movz x0, #0")
			fmt.Fprintln(&b, "add x1, x8, x9")
			fmt.Fprintln(&b, "movz x2, #1")
			fmt.Fprintln(&b, "movz w16, #4")
			fmt.Fprintln(&b, "svc #0x80")
		case ir.OpLoopStart:
			fmt.Fprintln(&b, "ldrb w10, [x8, x9]")
			fmt.Fprintln(&b, "subs wzr, w10, #0")
			fmt.Fprintf(&b, "b.eq %d\n", op.Arg)
		case ir.OpLoopEnd:
			fmt.Fprintln(&b, "ldrb w10, [x8, x9]")
			fmt.Fprintln(&b, "subs wzr, w10, #0")
			fmt.Fprintf(&b, "b.ne %d\n", op.Arg)
		case ir.OpClear:
			fmt.Fprintln(&b, "strb wzr, [x8, x9]")
		case ir.OpAddTo:
			disasmWrappedDelta(&b, "x12", "x9", op.Arg)
			fmt.Fprintln(&b, "ldrb w13, [x8, x12]")
			fmt.Fprintln(&b, "ldrb w10, [x8, x9]")
			fmt.Fprintln(&b, "add w13, w13, w10")
			fmt.Fprintln(&b, "strb w13, [x8, x12]")
			fmt.Fprintln(&b, "strb wzr, [x8, x9]")
		}
		offset += op.Kind.Size()
	}

	fmt.Fprintf(&b, "; epilogue (%d bytes)\n", ir.EpilogueSize)
	fmt.Fprintln(&b, "ldp x29, x30, [sp]")
	fmt.Fprintln(&b, "add sp, sp, #16")
	fmt.Fprintln(&b, "ret")
	return b.String()
}

func disasmWrappedDelta(b *strings.Builder, dst, src string, delta int) {
	imm := abs(delta) & 0xfff
	if delta >= 0 {
		fmt.Fprintf(b, "adds %s, %s, #%d\n", dst, src, imm)
		fmt.Fprintln(b, "movz x10, #30000")
		fmt.Fprintf(b, "subs x11, %s, x10\n", dst)
		fmt.Fprintf(b, "csel %s, x11, %s, hs\n", dst, dst)
		return
	}
	fmt.Fprintf(b, "subs %s, %s, #%d\n", dst, src, imm)
	fmt.Fprintln(b, "movz x10, #30000")
	fmt.Fprintf(b, "add x11, %s, x10\n", dst)
	fmt.Fprintf(b, "csel %s, x11, %s, mi\n", dst, dst)
}
