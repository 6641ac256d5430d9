package ir

import "fmt"

// PrologueSize and EpilogueSize are the fixed byte lengths the code
// generator places around the body. Parse tracks a running code-length
// counter in these same units so LoopStart/LoopEnd targets are already
// expressed as final code offsets — the generator never patches the
// buffer after the fact.
const (
	PrologueSize = 16
	EpilogueSize = 12
)

// Error is a compile-time parse failure: an unmatched bracket, carrying
// the offending character and its source byte index.
type Error struct {
	Char byte
	Pos  Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("unbalanced bracket %q at byte %d (line %d, column %d)", e.Char, e.Pos.Offset, e.Pos.Line, e.Pos.Column)
}

// bracketEntry is a transient bracket-stack record: the IR index of the
// LoopStart placeholder and the code offset at which it was opened.
type bracketEntry struct {
	irIndex    int
	codeOffset int
	pos        Position
}

// parser holds the state threaded through a single left-to-right scan of
// the token stream: the IR built so far, the running code-length
// counter, and the open-bracket stack.
type parser struct {
	ops     []Op
	codeLen int
	stack   []bracketEntry
}

// Parse consumes a token stream and produces a fully resolved IR program,
// or an *Error if the brackets are unbalanced. Folding of adjacent
// Increment/Move runs and loop-pattern recognition for Clear and AddTo
// happen inline during the same scan — there is no separate optimization
// pass over the IR afterward.
func Parse(toks []Token) ([]Op, error) {
	p := &parser{codeLen: PrologueSize}

	for _, tok := range toks {
		switch tok.Kind {
		case TokAdd:
			p.foldDelta(OpIncrement, 1, tok.Pos)
		case TokSub:
			p.foldDelta(OpIncrement, -1, tok.Pos)
		case TokShiftRight:
			p.foldDelta(OpMove, 1, tok.Pos)
		case TokShiftLeft:
			p.foldDelta(OpMove, -1, tok.Pos)
		case TokOut:
			p.push(Output(tok.Pos))
		case TokIn:
			p.push(Input(tok.Pos))
		case TokLBracket:
			p.stack = append(p.stack, bracketEntry{irIndex: len(p.ops), codeOffset: p.codeLen, pos: tok.Pos})
			p.push(LoopStart(0, tok.Pos))
		case TokRBracket:
			if len(p.stack) == 0 {
				return nil, &Error{Char: ']', Pos: tok.Pos}
			}
			top := p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]

			// The forward-branch target is the code offset of the byte
			// just after the LoopEnd about to be emitted. p.codeLen here
			// is where that LoopEnd itself will start (it hasn't been
			// pushed yet), so its size must be added to land just past
			// it. The optimized cases below remove the LoopStart
			// entirely, so this value is simply discarded there.
			p.ops[top.irIndex] = LoopStart(p.codeLen+OpLoopEnd.Size(), top.pos)

			if p.recognizeClear(top.irIndex, tok.Pos) {
				continue
			}
			if p.recognizeAddTo(top.irIndex, tok.Pos) {
				continue
			}
			p.push(LoopEnd(top.codeOffset, tok.Pos))
		}
	}

	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		return nil, &Error{Char: '[', Pos: top.pos}
	}
	return p.ops, nil
}

// push appends an op and advances the code-length counter by its kind's
// fixed emission size.
func (p *parser) push(op Op) {
	p.ops = append(p.ops, op)
	p.codeLen += op.Kind.Size()
}

// foldDelta implements the "+/-" and "</>" fold-and-cancel rule shared by
// Increment and Move: add into the previous op of the same kind if one
// is there, dropping it entirely if the running total cancels to zero.
func (p *parser) foldDelta(kind OpKind, delta int, pos Position) {
	if n := len(p.ops); n > 0 && p.ops[n-1].Kind == kind {
		p.ops[n-1].Arg += delta
		if p.ops[n-1].Arg == 0 {
			p.ops = p.ops[:n-1]
			p.codeLen -= kind.Size()
		}
		return
	}
	p.push(Op{Kind: kind, Arg: delta, Pos: pos})
}

// recognizeClear matches the trailing window `LoopStart, Increment(n)`
// with n odd (the loop zeroes the cell iff the per-iteration delta is
// odd, since cells wrap at 256) and replaces it with a single Clear.
func (p *parser) recognizeClear(loopStartIdx int, pos Position) bool {
	window := p.ops[loopStartIdx:]
	if len(window) != 2 || window[1].Kind != OpIncrement || window[1].Arg%2 == 0 {
		return false
	}
	p.codeLen -= OpLoopStart.Size() + OpIncrement.Size()
	p.ops = p.ops[:loopStartIdx]
	p.push(Clear(pos))
	return true
}

// recognizeAddTo matches the trailing window
// `LoopStart, Increment(-1), Move(n), Increment(1), Move(-n)` and
// replaces it with a single AddTo(n).
func (p *parser) recognizeAddTo(loopStartIdx int, pos Position) bool {
	window := p.ops[loopStartIdx:]
	if len(window) != 5 {
		return false
	}
	if window[1].Kind != OpIncrement || window[1].Arg != -1 {
		return false
	}
	if window[2].Kind != OpMove {
		return false
	}
	if window[3].Kind != OpIncrement || window[3].Arg != 1 {
		return false
	}
	if window[4].Kind != OpMove || window[4].Arg != -window[2].Arg {
		return false
	}
	n := window[2].Arg
	p.codeLen -= OpLoopStart.Size() + 2*OpIncrement.Size() + 2*OpMove.Size()
	p.ops = p.ops[:loopStartIdx]
	p.push(AddTo(n, pos))
	return true
}
