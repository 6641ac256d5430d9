package ir

import "testing"

func parse(t *testing.T, src string) []Op {
	t.Helper()
	ops, err := Parse(Tokenize([]byte(src)))
	if err != nil {
		t.Fatalf("Parse(%q) returned unexpected error: %v", src, err)
	}
	return ops
}

func TestParseEmptySource(t *testing.T) {
	ops := parse(t, "")
	if len(ops) != 0 {
		t.Fatalf("expected empty IR, got %d ops", len(ops))
	}
}

func TestIncrementFoldingCancelsToZero(t *testing.T) {
	ops := parse(t, "+-")
	if len(ops) != 0 {
		t.Fatalf("run of +/- totaling zero should produce no IR, got %v", ops)
	}
}

func TestMoveFoldingCancelsToZero(t *testing.T) {
	ops := parse(t, "><")
	if len(ops) != 0 {
		t.Fatalf("run of </> totaling zero should produce no IR, got %v", ops)
	}
}

func TestIncrementFoldingAccumulates(t *testing.T) {
	ops := parse(t, "+++")
	if len(ops) != 1 || ops[0].Kind != OpIncrement || ops[0].Arg != 3 {
		t.Fatalf("expected single Increment(3), got %v", ops)
	}
}

func TestClearRecognition(t *testing.T) {
	ops := parse(t, "[-]")
	if len(ops) != 1 || ops[0].Kind != OpClear {
		t.Fatalf("[-] should compile to a single Clear, got %v", ops)
	}
}

func TestClearRecognitionPlusVariant(t *testing.T) {
	ops := parse(t, "[+]")
	if len(ops) != 1 || ops[0].Kind != OpClear {
		t.Fatalf("[+] should compile to a single Clear, got %v", ops)
	}
}

func TestEvenDeltaDoesNotOptimize(t *testing.T) {
	ops := parse(t, "[--]")
	if len(ops) != 3 || ops[0].Kind != OpLoopStart || ops[1].Kind != OpIncrement || ops[2].Kind != OpLoopEnd {
		t.Fatalf("[--] has even delta and must not optimize, got %v", ops)
	}
	if len(ops) > 0 && ops[len(ops)-1].Kind == OpLoopEnd {
		return
	}
}

func TestAddToRecognition(t *testing.T) {
	ops := parse(t, "[->+<]")
	if len(ops) != 1 || ops[0].Kind != OpAddTo || ops[0].Arg != 1 {
		t.Fatalf("[->+<] should compile to AddTo(1), got %v", ops)
	}
}

func TestAddToRecognitionMultiCell(t *testing.T) {
	ops := parse(t, "[->>>+<<<]")
	if len(ops) != 1 || ops[0].Kind != OpAddTo || ops[0].Arg != 3 {
		t.Fatalf("[->>>+<<<] should compile to AddTo(3), got %v", ops)
	}
}

func TestAddToShapeMismatchDoesNotOptimize(t *testing.T) {
	ops := parse(t, "[->+>+<<]")
	for _, op := range ops {
		if op.Kind == OpAddTo {
			t.Fatalf("[->+>+<<] has a five-instruction window mismatch and must not become AddTo, got %v", ops)
		}
	}
}

func TestUnmatchedCloseBracket(t *testing.T) {
	_, err := Parse(Tokenize([]byte("]")))
	if err == nil {
		t.Fatal("expected an error for an unmatched ']'")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Char != ']' || perr.Pos.Offset != 0 {
		t.Fatalf("expected ']' at offset 0, got %q at %d", perr.Char, perr.Pos.Offset)
	}
}

func TestUnmatchedOpenBracket(t *testing.T) {
	_, err := Parse(Tokenize([]byte("[[]")))
	if err == nil {
		t.Fatal("expected an error for an unmatched '['")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Char != '[' || perr.Pos.Offset != 0 {
		t.Fatalf("expected '[' at offset 0, got %q at %d", perr.Char, perr.Pos.Offset)
	}
}

func TestDeclaredSizesSumToWholeInstructionWords(t *testing.T) {
	src := "++>,.[-]+[->+<]"
	ops := parse(t, src)
	total := PrologueSize + EpilogueSize
	for _, op := range ops {
		total += op.Kind.Size()
	}
	// Sanity: every kind present contributes its declared size, and the
	// total is always a multiple of 4 (whole instruction words).
	if total%4 != 0 {
		t.Fatalf("emitted length %d is not a multiple of 4", total)
	}
}

func TestLoopTargetsAreConsistent(t *testing.T) {
	ops := parse(t, "+[>-]")
	var start, end *Op
	for i := range ops {
		switch ops[i].Kind {
		case OpLoopStart:
			start = &ops[i]
		case OpLoopEnd:
			end = &ops[i]
		}
	}
	if start == nil || end == nil {
		t.Fatalf("expected a LoopStart/LoopEnd pair, got %v", ops)
	}
	// The LoopEnd's backward target must equal the code offset recorded
	// when the LoopStart was opened, which is exactly the offset a
	// second, independent run of the generator would derive for that
	// same instruction.
	wantLoopEndTarget := PrologueSize + OpIncrement.Size()
	if end.Arg != wantLoopEndTarget {
		t.Fatalf("LoopEnd target = %d, want %d", end.Arg, wantLoopEndTarget)
	}
	// The LoopStart's forward target must land just past the LoopEnd
	// itself, not at its own start.
	wantLoopStartTarget := PrologueSize + 2*OpIncrement.Size() + OpLoopStart.Size() + OpMove.Size() + OpLoopEnd.Size()
	if start.Arg != wantLoopStartTarget {
		t.Fatalf("LoopStart target = %d, want %d", start.Arg, wantLoopStartTarget)
	}
}
