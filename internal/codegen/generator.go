// Package codegen walks an IR program and emits AArch64 machine code.
//
// Register conventions, fixed throughout the emitted body:
//
//	x8  tape base (copied from x0 on entry, immutable after)
//	x9  cell pointer p, initialized to 0
//	x10-x13 scratch
//
// Every IR variant has a declared emission size (ir.OpKind.Size); the
// parser already resolved LoopStart/LoopEnd targets to absolute code
// offsets using that same size table, so this generator never patches
// the buffer after the fact — every branch immediate is computable at
// the point the branch instruction itself is emitted.
package codegen

import (
	"fmt"

	"github.com/lcox74/bfcc-arm64/internal/ir"
	"github.com/lcox74/bfcc-arm64/pkg/arm64"
)

// Mach/BSD syscall numbers and trap vector this target uses (see the
// external interfaces: svc #0x80, not Linux's svc #0).
const (
	syscallRead  = 3
	syscallWrite = 4
	svcVector    = 0x80

	// File descriptors as the reference target actually encodes them —
	// swapped from strict POSIX convention; preserved verbatim.
	fdRead  = 1
	fdWrite = 0
)

// Generator emits AArch64 machine code for a parsed, optimized IR
// program.
type Generator struct {
	ops  []ir.Op
	code []byte
}

// NewGenerator returns a Generator for the given IR program.
func NewGenerator(ops []ir.Op) *Generator {
	return &Generator{ops: ops}
}

// Generate produces the native code buffer: prologue, one emission per
// IR instruction, epilogue. The output length always equals
// ir.PrologueSize + the sum of each op's declared size + ir.EpilogueSize.
func (g *Generator) Generate() []byte {
	g.code = make([]byte, 0, ir.PrologueSize+ir.EpilogueSize+len(g.ops)*16)
	g.emitPrologue()
	for _, op := range g.ops {
		g.emitOp(op)
	}
	g.emitEpilogue()
	return g.code
}

func (g *Generator) word(w arm64.Word) {
	g.code = arm64.Encode(g.code, w)
}

// emitPrologue reserves a 16-byte frame, saves the frame/link registers,
// copies the tape base into x8, and zeroes the cell pointer x9.
func (g *Generator) emitPrologue() {
	g.word(arm64.SubImm64(arm64.SP, arm64.SP, 16))
	g.word(arm64.Stp64(arm64.X29, arm64.X30, arm64.SP))
	g.word(arm64.MovReg64(arm64.X8, arm64.X0))
	g.word(arm64.MovzImm64(arm64.X9, 0))
}

// emitEpilogue restores the frame/link registers, releases the frame,
// and returns to the caller.
func (g *Generator) emitEpilogue() {
	g.word(arm64.Ldp64(arm64.X29, arm64.X30, arm64.SP))
	g.word(arm64.AddImm64(arm64.SP, arm64.SP, 16))
	g.word(arm64.Ret(arm64.X30))
}

func (g *Generator) emitOp(op ir.Op) {
	switch op.Kind {
	case ir.OpIncrement:
		g.emitIncrement(op.Arg)
	case ir.OpMove:
		g.emitMove(op.Arg)
	case ir.OpInput:
		g.emitInput()
	case ir.OpOutput:
		g.emitOutput()
	case ir.OpLoopStart:
		g.emitLoopStart(op.Arg)
	case ir.OpLoopEnd:
		g.emitLoopEnd(op.Arg)
	case ir.OpClear:
		g.emitClear()
	case ir.OpAddTo:
		g.emitAddTo(op.Arg)
	default:
		panic(fmt.Sprintf("codegen: unhandled op kind %v", op.Kind))
	}
}

// emitIncrement: tape[p] += delta (mod 256). The 12-bit immediate field
// silently wraps a large folded delta via `& 0xfff` — this is required
// for byte-exact reproduction of the reference, not a missed clamp.
func (g *Generator) emitIncrement(delta int) {
	imm12 := uint32(delta) & 0xfff
	// Materialize the cell address once into x11 rather than repeating
	// the [x8,x9] register-offset form on both the load and the store.
	g.word(arm64.AddReg64(arm64.X11, arm64.X8, arm64.X9))
	g.word(arm64.LdrbRegOffset(arm64.X10, arm64.X11, arm64.XZR))
	g.word(arm64.AddImm32(arm64.X10, arm64.X10, imm12))
	g.word(arm64.StrbRegOffset(arm64.X10, arm64.X11, arm64.XZR))
}

// emitMove: p = (p + step) mod 30000. Because step is masked to 12 bits
// (|step| <= 4095) and p is always kept in [0, 30000) as an invariant,
// p+step can only overshoot in the direction its own sign implies —
// never both — so a single compare-and-select corrects it without a
// branch.
func (g *Generator) emitMove(step int) {
	g.emitWrappedDelta(arm64.X9, arm64.X9, step)
}

// emitWrappedDelta computes dst = wrap(src + delta) into [0, TapeSize),
// relying on the same bounded-overshoot invariant emitMove and emitAddTo
// both depend on. x10 and x11 are used as scratch; dst may equal src.
func (g *Generator) emitWrappedDelta(dst, src uint32, delta int) {
	imm12 := uint32(abs(delta)) & 0xfff
	if delta >= 0 {
		g.word(arm64.AddsImm64(dst, src, imm12))
		g.word(arm64.MovzImm64(arm64.X10, ir.TapeSize))
		g.word(arm64.SubsReg64(arm64.X11, dst, arm64.X10))
		g.word(arm64.CselReg64(dst, arm64.X11, dst, arm64.CondHS))
		return
	}
	g.word(arm64.SubsImm64(dst, src, imm12))
	g.word(arm64.MovzImm64(arm64.X10, ir.TapeSize))
	g.word(arm64.AddReg64(arm64.X11, dst, arm64.X10))
	g.word(arm64.CselReg64(dst, arm64.X11, dst, arm64.CondMI))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// emitInput: read 1 byte from fd 1 into tape[p].
func (g *Generator) emitInput() {
	g.emitSyscall(fdRead, syscallRead)
}

// emitOutput: write 1 byte from tape[p] to fd 0.
func (g *Generator) emitOutput() {
	g.emitSyscall(fdWrite, syscallWrite)
}

func (g *Generator) emitSyscall(fd, number uint32) {
	g.word(arm64.MovzImm64(arm64.X0, fd))
	g.word(arm64.AddReg64(arm64.X1, arm64.X8, arm64.X9))
	g.word(arm64.MovzImm64(arm64.X2, 1))
	g.word(arm64.MovzImm32(arm64.X16, number))
	g.word(arm64.Svc(svcVector))
}

// emitLoopStart: load tape[p], test against zero, b.eq to the absolute
// end_offset recorded by the parser.
func (g *Generator) emitLoopStart(endOffset int) {
	g.emitTestAndBranch(arm64.CondEQ, endOffset)
}

// emitLoopEnd: load tape[p], test against zero, b.ne to the absolute
// start_offset recorded by the parser when the loop was opened.
func (g *Generator) emitLoopEnd(startOffset int) {
	g.emitTestAndBranch(arm64.CondNE, startOffset)
}

func (g *Generator) emitTestAndBranch(cond arm64.Cond, target int) {
	g.word(arm64.LdrbRegOffset(arm64.X10, arm64.X8, arm64.X9))
	g.word(arm64.SubsImm32(arm64.WZR, arm64.X10, 0))
	// The branch instruction's own position is current length, since the
	// two words above are already appended.
	branchPos := len(g.code)
	g.word(arm64.BCond(cond, int32(target-branchPos)))
}

// emitClear: tape[p] = 0.
func (g *Generator) emitClear() {
	g.word(arm64.StrbRegOffset(arm64.WZR, arm64.X8, arm64.X9))
}

// emitAddTo: tape[p+n] += tape[p]; tape[p] = 0. The target index is
// computed into x12 using the same wrap logic as Move, addressed via
// base+index rather than a separately materialized pointer.
func (g *Generator) emitAddTo(n int) {
	g.emitWrappedDelta(arm64.X12, arm64.X9, n)
	g.word(arm64.LdrbRegOffset(arm64.X13, arm64.X8, arm64.X12))
	g.word(arm64.LdrbRegOffset(arm64.X10, arm64.X8, arm64.X9))
	g.word(arm64.AddReg32(arm64.X13, arm64.X13, arm64.X10))
	g.word(arm64.StrbRegOffset(arm64.X13, arm64.X8, arm64.X12))
	g.word(arm64.StrbRegOffset(arm64.WZR, arm64.X8, arm64.X9))
}
