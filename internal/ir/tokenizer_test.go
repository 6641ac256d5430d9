package ir

import "testing"

func TestTokenizeSkipsComments(t *testing.T) {
	toks := Tokenize([]byte("+ hello -"))
	var kinds []TokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{TokAdd, TokSub, TokEOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("got %v, want %v", kinds, want)
		}
	}
}

func TestTokenizeTracksLineAndColumn(t *testing.T) {
	toks := Tokenize([]byte("+\n-"))
	if toks[0].Pos.Line != 1 || toks[0].Pos.Column != 1 {
		t.Fatalf("first token position = %+v, want line 1 col 1", toks[0].Pos)
	}
	if toks[1].Pos.Line != 2 || toks[1].Pos.Column != 1 {
		t.Fatalf("second token position = %+v, want line 2 col 1", toks[1].Pos)
	}
}

func TestTokenizeEmptySourceYieldsOnlyEOF(t *testing.T) {
	toks := Tokenize(nil)
	if len(toks) != 1 || toks[0].Kind != TokEOF {
		t.Fatalf("expected a single EOF token, got %v", toks)
	}
}
