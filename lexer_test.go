package polonio

import "testing"

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	tokens, err := Lex("var echo functio functions end", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenKind{Var, Echo, Identifier, Identifier, End, EndOfFile}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %#v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got kind %v, want %v (lexeme %q)", i, tokens[i].Kind, k, tokens[i].Lexeme)
		}
	}
}

func TestLexNumbers(t *testing.T) {
	tokens, err := Lex("42 3.14 0", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"42", "3.14", "0"}
	for i, w := range want {
		if tokens[i].Kind != Number || tokens[i].Lexeme != w {
			t.Errorf("token %d: got %v %q, want Number %q", i, tokens[i].Kind, tokens[i].Lexeme, w)
		}
	}
}

func TestLexStringRetainsRawLexeme(t *testing.T) {
	tokens, err := Lex(`"hi\n" 'a\'b'`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != String || tokens[0].Lexeme != `"hi\n"` {
		t.Errorf("got %q, want raw lexeme %q", tokens[0].Lexeme, `"hi\n"`)
	}
	if tokens[1].Kind != String || tokens[1].Lexeme != `'a\'b'` {
		t.Errorf("got %q, want raw lexeme %q", tokens[1].Lexeme, `'a\'b'`)
	}
}

func TestLexUnterminatedStringFails(t *testing.T) {
	_, err := Lex(`"unterminated`, "f.pol")
	if err == nil {
		t.Fatal("expected an error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != LexError {
		t.Fatalf("got %v, want a LexError", err)
	}
}

func TestLexUnterminatedBlockCommentFails(t *testing.T) {
	_, err := Lex("/* never closed", "")
	if err == nil {
		t.Fatal("expected an error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != LexError {
		t.Fatalf("got %v, want a LexError", err)
	}
}

func TestLexBlockCommentSpansNewlines(t *testing.T) {
	tokens, err := Lex("1 /* a\nb\nc */ 2", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 || tokens[0].Lexeme != "1" || tokens[1].Lexeme != "2" {
		t.Fatalf("unexpected tokens: %#v", tokens)
	}
}

func TestLexMultiCharOperators(t *testing.T) {
	tokens, err := Lex("== != <= >= += -= *= /= %= .. ..=", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenKind{EqualEqual, NotEqual, LessEqual, GreaterEqual, PlusEqual, MinusEqual, StarEqual, SlashEqual, PercentEqual, DotDot, DotDotEqual, EndOfFile}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %#v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestLexBareDotAndBangFail(t *testing.T) {
	if _, err := Lex(".", ""); err == nil {
		t.Error("expected bare '.' to fail")
	}
	if _, err := Lex("!", ""); err == nil {
		t.Error("expected bare '!' to fail")
	}
}

func TestLexSpanAdvancesByByteAndLine(t *testing.T) {
	tokens, err := Lex("a\nbb", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "a"
	if tokens[0].Start != (Location{Offset: 0, Line: 1, Column: 1}) {
		t.Errorf("got start %+v", tokens[0].Start)
	}
	if tokens[0].End != (Location{Offset: 1, Line: 1, Column: 2}) {
		t.Errorf("got end %+v", tokens[0].End)
	}
	// "bb" starts on line 2 after the newline
	if tokens[1].Start != (Location{Offset: 2, Line: 2, Column: 1}) {
		t.Errorf("got start %+v", tokens[1].Start)
	}
}

func TestLexEndOfFileSpanPointsPastLastByte(t *testing.T) {
	tokens, err := Lex("ab", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eof := tokens[len(tokens)-1]
	if eof.Kind != EndOfFile {
		t.Fatalf("last token is not EndOfFile: %#v", eof)
	}
	if eof.Start.Offset != 2 {
		t.Errorf("EndOfFile offset = %d, want 2", eof.Start.Offset)
	}
}
