package polonio

// TokenKind enumerates every terminal the lexer produces.
type TokenKind int

const (
	EndOfFile TokenKind = iota

	Identifier
	Number
	String

	// Keywords
	Var
	Function
	Echo
	True
	False
	Null
	And
	Or
	Not
	End
	If
	ElseIf
	Else
	For
	In
	While
	Return

	// Punctuation and operators
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	Comma
	Colon
	Semicolon

	Plus
	Minus
	Star
	Slash
	Percent

	PlusEqual
	MinusEqual
	StarEqual
	SlashEqual
	PercentEqual

	Equal
	EqualEqual
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual

	DotDot
	DotDotEqual
)

var keywordKinds = map[string]TokenKind{
	"var":      Var,
	"function": Function,
	"echo":     Echo,
	"true":     True,
	"false":    False,
	"null":     Null,
	"and":      And,
	"or":       Or,
	"not":      Not,
	"end":      End,
	"if":       If,
	"elseif":   ElseIf,
	"else":     Else,
	"for":      For,
	"in":       In,
	"while":    While,
	"return":   Return,
}

// Token carries the terminal kind, its raw source text, and the span of
// bytes it was scanned from.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Start  Location
	End    Location
}

func (t Token) String() string {
	return t.Lexeme
}
