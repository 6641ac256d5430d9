// Package ir defines the intermediate representation that sits between
// source parsing and AArch64 code generation.
//
// The instruction set is a closed, tagged-variant set of eight kinds.
// Every variant has a fixed native-code emission size, known before code
// generation runs, which lets the code generator compute branch targets
// without a post-pass patching step.
package ir

import "fmt"

// TapeSize is the number of cells on the data tape the compiled program
// operates on. The cell pointer wraps modulo this value.
const TapeSize = 30000

// Position locates a byte within the source buffer.
type Position struct {
	Offset int
	Line   int
	Column int
}

// OpKind tags the variant of an Op.
type OpKind int

const (
	OpIncrement OpKind = iota
	OpMove
	OpInput
	OpOutput
	OpLoopStart
	OpLoopEnd
	OpClear
	OpAddTo
)

var opNames = [...]string{
	OpIncrement: "INCREMENT",
	OpMove:      "MOVE",
	OpInput:     "INPUT",
	OpOutput:    "OUTPUT",
	OpLoopStart: "LOOP_START",
	OpLoopEnd:   "LOOP_END",
	OpClear:     "CLEAR",
	OpAddTo:     "ADD_TO",
}

func (k OpKind) String() string {
	if int(k) < 0 || int(k) >= len(opNames) {
		return "UNKNOWN"
	}
	return opNames[k]
}

// emittedBytes gives the fixed native-code size of each variant, per the
// emission table: Increment/Move 16, Input/Output 20, LoopStart/LoopEnd
// 12, Clear 4, AddTo 36.
var emittedBytes = [...]int{
	OpIncrement: 16,
	OpMove:      16,
	OpInput:     20,
	OpOutput:    20,
	OpLoopStart: 12,
	OpLoopEnd:   12,
	OpClear:     4,
	OpAddTo:     36,
}

// Size returns the number of native-code bytes this op's kind emits.
func (k OpKind) Size() int {
	return emittedBytes[k]
}

// Op is a single IR instruction: a kind plus its payload.
//
// Arg's meaning depends on Kind:
//   - Increment: signed delta applied to tape[p]
//   - Move: signed step applied to p
//   - LoopStart: absolute code offset just past the matching LoopEnd
//   - LoopEnd: absolute code offset of the matching LoopStart
//   - AddTo: signed relative cell offset n
//   - Input, Output, Clear: unused, always 0
type Op struct {
	Kind OpKind
	Arg  int
	Pos  Position
}

func Increment(delta int, pos Position) Op { return Op{Kind: OpIncrement, Arg: delta, Pos: pos} }
func Move(step int, pos Position) Op       { return Op{Kind: OpMove, Arg: step, Pos: pos} }
func Input(pos Position) Op                { return Op{Kind: OpInput, Pos: pos} }
func Output(pos Position) Op               { return Op{Kind: OpOutput, Pos: pos} }
func LoopStart(target int, pos Position) Op {
	return Op{Kind: OpLoopStart, Arg: target, Pos: pos}
}
func LoopEnd(target int, pos Position) Op { return Op{Kind: OpLoopEnd, Arg: target, Pos: pos} }
func Clear(pos Position) Op               { return Op{Kind: OpClear, Pos: pos} }
func AddTo(n int, pos Position) Op        { return Op{Kind: OpAddTo, Arg: n, Pos: pos} }

// Dump renders a program as one instruction per line, for the `ir`
// CLI subcommand.
func Dump(ops []Op) string {
	out := ""
	for i, op := range ops {
		switch op.Kind {
		case OpIncrement, OpMove, OpLoopStart, OpLoopEnd, OpAddTo:
			out += fmt.Sprintf("%4d: %-10s %d\n", i, op.Kind, op.Arg)
		default:
			out += fmt.Sprintf("%4d: %-10s\n", i, op.Kind)
		}
	}
	return out
}
