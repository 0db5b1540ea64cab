package polonio

import "testing"

func mustLex(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Lex(src, "")
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	return tokens
}

func TestParseArithmeticPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3)
	expr, err := ParseExpression(mustLex(t, "1 + 2 * 3"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, ok := expr.(*Binary)
	if !ok || top.Op != "+" {
		t.Fatalf("top-level op = %#v, want '+'", expr)
	}
	right, ok := top.Right.(*Binary)
	if !ok || right.Op != "*" {
		t.Fatalf("right operand = %#v, want '*' binary", top.Right)
	}
}

func TestParseConcatBindsTighterThanComparisonLooserThanAdditive(t *testing.T) {
	expr, err := ParseExpression(mustLex(t, `1 + 2 .. "x" < "y"`), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, ok := expr.(*Binary)
	if !ok || top.Op != "<" {
		t.Fatalf("top-level op = %#v, want '<'", expr)
	}
	left, ok := top.Left.(*Binary)
	if !ok || left.Op != ".." {
		t.Fatalf("left operand = %#v, want '..' binary", top.Left)
	}
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	expr, err := ParseExpression(mustLex(t, "a = b = 1"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := expr.(*Assignment)
	if !ok {
		t.Fatalf("got %#v, want *Assignment", expr)
	}
	if _, ok := outer.Value.(*Assignment); !ok {
		t.Fatalf("outer.Value = %#v, want nested *Assignment", outer.Value)
	}
}

func TestParseInvalidAssignmentTargetFails(t *testing.T) {
	_, err := ParseExpression(mustLex(t, "1 + 1 = 2"), "")
	if err == nil {
		t.Fatal("expected an error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != ParseError {
		t.Fatalf("got %v, want ParseError", err)
	}
}

func TestParseObjectLiteralRejectsBareIdentifierKeys(t *testing.T) {
	_, err := ParseExpression(mustLex(t, "{a: 1}"), "")
	if err == nil {
		t.Fatal("expected an error for bare identifier object key")
	}
}

func TestParseFunctionDeclWithTrailingCommaRejected(t *testing.T) {
	_, err := Parse(mustLex(t, "function f(a, b,) end"), "")
	if err == nil {
		t.Fatal("expected an error for trailing comma in parameter list")
	}
}

func TestParseProgramStructureForFactorial(t *testing.T) {
	program, err := Parse(mustLex(t, `
function fact(n)
  if n <= 1 return 1 end
  return n * fact(n - 1)
end
echo fact(5)
`), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(program.Statements) != 2 {
		t.Fatalf("got %d top-level statements, want 2", len(program.Statements))
	}
	fn, ok := program.Statements[0].(*FunctionDecl)
	if !ok || fn.Name != "fact" || len(fn.Params) != 1 || fn.Params[0] != "n" {
		t.Fatalf("got %#v", program.Statements[0])
	}
	if _, ok := program.Statements[1].(*Echo); !ok {
		t.Fatalf("got %#v, want *Echo", program.Statements[1])
	}
}

func TestParseForWithAndWithoutIndex(t *testing.T) {
	program, err := Parse(mustLex(t, "for v in arr end\nfor k,v in obj end"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := program.Statements[0].(*For)
	if first.IndexName != "" || first.ValueName != "v" {
		t.Fatalf("got %#v", first)
	}
	second := program.Statements[1].(*For)
	if second.IndexName != "k" || second.ValueName != "v" {
		t.Fatalf("got %#v", second)
	}
}

func TestParseReturnWithoutValue(t *testing.T) {
	program, err := Parse(mustLex(t, "function f() return end"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := program.Statements[0].(*FunctionDecl)
	ret := fn.Body[0].(*Return)
	if ret.Value != nil {
		t.Fatalf("got value %#v, want nil", ret.Value)
	}
}

func TestParseOptionalSemicolons(t *testing.T) {
	program, err := Parse(mustLex(t, "var a = 1; var b = 2"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Statements))
	}
}
