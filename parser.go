package polonio

// Parser is a recursive-descent, precedence-climbing parser over a token
// stream produced by the Lexer. It fails fast with a Parse error located at
// the offending token's start.
type Parser struct {
	tokens  []Token
	path    string
	current int
}

// NewParser constructs a Parser over an already-lexed token stream.
func NewParser(tokens []Token, path string) *Parser {
	return &Parser{tokens: tokens, path: path}
}

// Parse lexes nothing itself; it consumes tokens and produces a Program.
func Parse(tokens []Token, path string) (*Program, error) {
	return NewParser(tokens, path).ParseProgram()
}

// ParseExpression parses a single expression and requires the whole token
// stream (aside from the trailing EndOfFile) to have been consumed.
func ParseExpression(tokens []Token, path string) (Expr, error) {
	p := NewParser(tokens, path)
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, p.errorAt(p.peek(), "unexpected token after expression")
	}
	return expr, nil
}

// ParseProgram consumes the whole token stream as a sequence of top-level
// declarations/statements.
func (p *Parser) ParseProgram() (*Program, error) {
	var stmts []Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipSemicolons()
	}
	return &Program{Statements: stmts}, nil
}

// --- token stream helpers ---

func (p *Parser) peek() Token { return p.tokens[p.current] }

func (p *Parser) previous() Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Kind == EndOfFile }

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return kind == EndOfFile
	}
	return p.peek().Kind == kind
}

func (p *Parser) checkAny(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind TokenKind, message string) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok Token, message string) error {
	return newParseError(p.path, message, tok.Start)
}

func (p *Parser) skipSemicolons() {
	for p.match(Semicolon) {
	}
}

// --- declarations and statements ---

func (p *Parser) declaration() (Stmt, error) {
	switch {
	case p.check(Var):
		return p.varDecl()
	case p.check(Function):
		return p.functionDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) varDecl() (Stmt, error) {
	varTok := p.advance()
	nameTok, err := p.consume(Identifier, "expected variable name after 'var'")
	if err != nil {
		return nil, err
	}
	var initializer Expr
	if p.match(Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	return &VarDecl{base: base{varTok.Start}, Name: nameTok.Lexeme, Initializer: initializer}, nil
}

func (p *Parser) functionDecl() (Stmt, error) {
	funcTok := p.advance()
	nameTok, err := p.consume(Identifier, "expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(LeftParen, "expected '(' after function name"); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(RightParen) {
		for {
			paramTok, err := p.consume(Identifier, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Lexeme)
			if !p.match(Comma) {
				break
			}
			if p.check(RightParen) {
				return nil, p.errorAt(p.peek(), "trailing comma in parameter list")
			}
		}
	}
	if _, err := p.consume(RightParen, "expected ')' after parameter list"); err != nil {
		return nil, err
	}
	body, err := p.blockUntil(End)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(End, "expected 'end' to close function"); err != nil {
		return nil, err
	}
	return &FunctionDecl{base: base{funcTok.Start}, Name: nameTok.Lexeme, Params: params, Body: body}, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.check(Echo):
		return p.echoStmt()
	case p.check(If):
		return p.ifStmt()
	case p.check(While):
		return p.whileStmt()
	case p.check(For):
		return p.forStmt()
	case p.check(Return):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) echoStmt() (Stmt, error) {
	echoTok := p.advance()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &Echo{base: base{echoTok.Start}, Expr: expr}, nil
}

func (p *Parser) exprStmt() (Stmt, error) {
	start := p.peek().Start
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{base: base{start}, Expr: expr}, nil
}

func (p *Parser) ifStmt() (Stmt, error) {
	ifTok := p.advance()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.blockUntil(ElseIf, Else, End)
	if err != nil {
		return nil, err
	}
	branches := []IfBranch{{Cond: cond, Body: body}}
	for p.check(ElseIf) {
		p.advance()
		elseifCond, err := p.expression()
		if err != nil {
			return nil, err
		}
		elseifBody, err := p.blockUntil(ElseIf, Else, End)
		if err != nil {
			return nil, err
		}
		branches = append(branches, IfBranch{Cond: elseifCond, Body: elseifBody})
	}
	var elseBody []Stmt
	if p.check(Else) {
		p.advance()
		elseBody, err = p.blockUntil(End)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(End, "expected 'end' to close if"); err != nil {
		return nil, err
	}
	return &If{base: base{ifTok.Start}, Branches: branches, ElseBody: elseBody}, nil
}

func (p *Parser) whileStmt() (Stmt, error) {
	whileTok := p.advance()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.blockUntil(End)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(End, "expected 'end' to close while"); err != nil {
		return nil, err
	}
	return &While{base: base{whileTok.Start}, Cond: cond, Body: body}, nil
}

func (p *Parser) forStmt() (Stmt, error) {
	forTok := p.advance()
	first, err := p.consume(Identifier, "expected loop variable name")
	if err != nil {
		return nil, err
	}
	indexName, valueName := "", first.Lexeme
	if p.match(Comma) {
		second, err := p.consume(Identifier, "expected second loop variable name")
		if err != nil {
			return nil, err
		}
		indexName, valueName = first.Lexeme, second.Lexeme
	}
	if _, err := p.consume(In, "expected 'in' in for loop"); err != nil {
		return nil, err
	}
	iterable, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.blockUntil(End)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(End, "expected 'end' to close for"); err != nil {
		return nil, err
	}
	return &For{base: base{forTok.Start}, IndexName: indexName, ValueName: valueName, Iterable: iterable, Body: body}, nil
}

func (p *Parser) returnStmt() (Stmt, error) {
	retTok := p.advance()
	var value Expr
	if p.canStartExpression() {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	return &Return{base: base{retTok.Start}, Value: value}, nil
}

func (p *Parser) canStartExpression() bool {
	return p.checkAny(Number, String, True, False, Null, Identifier,
		LeftParen, LeftBracket, LeftBrace, Not, Minus)
}

// blockUntil parses declarations until the current token matches one of
// terminators (or end of input), consuming optional statement-terminating
// semicolons between each.
func (p *Parser) blockUntil(terminators ...TokenKind) ([]Stmt, error) {
	var stmts []Stmt
	for !p.isAtEnd() && !p.checkAny(terminators...) {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipSemicolons()
	}
	return stmts, nil
}

// --- expressions, lowest to highest precedence ---

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.orExpr()
	if err != nil {
		return nil, err
	}
	if p.match(Equal, PlusEqual, MinusEqual, StarEqual, SlashEqual, PercentEqual, DotDotEqual) {
		opTok := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		switch expr.(type) {
		case *Identifier, *Index:
			return &Assignment{base: base{expr.Loc()}, Target: expr, Op: opTok.Lexeme, Value: value}, nil
		default:
			return nil, p.errorAt(opTok, "invalid assignment target")
		}
	}
	return expr, nil
}

func (p *Parser) orExpr() (Expr, error) {
	expr, err := p.andExpr()
	if err != nil {
		return nil, err
	}
	for p.check(Or) {
		p.advance()
		right, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		expr = &Binary{base: base{expr.Loc()}, Op: "or", Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) andExpr() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.check(And) {
		p.advance()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &Binary{base: base{expr.Loc()}, Op: "and", Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(EqualEqual, NotEqual) {
		op := p.previous().Lexeme
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &Binary{base: base{expr.Loc()}, Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.concat()
	if err != nil {
		return nil, err
	}
	for p.match(Less, LessEqual, Greater, GreaterEqual) {
		op := p.previous().Lexeme
		right, err := p.concat()
		if err != nil {
			return nil, err
		}
		expr = &Binary{base: base{expr.Loc()}, Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) concat() (Expr, error) {
	expr, err := p.additive()
	if err != nil {
		return nil, err
	}
	for p.match(DotDot) {
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		expr = &Binary{base: base{expr.Loc()}, Op: "..", Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) additive() (Expr, error) {
	expr, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.match(Plus, Minus) {
		op := p.previous().Lexeme
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		expr = &Binary{base: base{expr.Loc()}, Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) multiplicative() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(Star, Slash, Percent) {
		op := p.previous().Lexeme
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &Binary{base: base{expr.Loc()}, Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.check(Not) || p.check(Minus) {
		opTok := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		op := "-"
		if opTok.Kind == Not {
			op = "not"
		}
		return &Unary{base: base{opTok.Start}, Op: op, Operand: operand}, nil
	}
	return p.postfix()
}

func (p *Parser) postfix() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(LeftParen):
			var args []Expr
			if !p.check(RightParen) {
				for {
					arg, err := p.expression()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if !p.match(Comma) {
						break
					}
				}
			}
			if _, err := p.consume(RightParen, "expected ')' after arguments"); err != nil {
				return nil, err
			}
			expr = &Call{base: base{expr.Loc()}, Callee: expr, Args: args}
		case p.match(LeftBracket):
			idx, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(RightBracket, "expected ']' after index"); err != nil {
				return nil, err
			}
			expr = &Index{base: base{expr.Loc()}, Object: expr, Index: idx}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(Number):
		tok := p.previous()
		return &Literal{base: base{tok.Start}, Repr: "num(" + tok.Lexeme + ")"}, nil
	case p.match(String):
		tok := p.previous()
		return &Literal{base: base{tok.Start}, Repr: "str(" + tok.Lexeme + ")"}, nil
	case p.match(True):
		return &Literal{base: base{p.previous().Start}, Repr: "bool(true)"}, nil
	case p.match(False):
		return &Literal{base: base{p.previous().Start}, Repr: "bool(false)"}, nil
	case p.match(Null):
		return &Literal{base: base{p.previous().Start}, Repr: "null"}, nil
	case p.match(Identifier):
		tok := p.previous()
		return &Identifier{base: base{tok.Start}, Name: tok.Lexeme}, nil
	case p.match(LeftParen):
		start := p.previous().Start
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		expr = reanchor(expr, start)
		return expr, nil
	case p.match(LeftBracket):
		return p.arrayLiteral()
	case p.match(LeftBrace):
		return p.objectLiteral()
	}
	return nil, p.errorAt(p.peek(), "expected expression")
}

// reanchor returns expr unchanged: parenthesization doesn't change the tree
// shape, and the location of the outer `(` is discarded, so a parenthesized
// expression keeps the location of its own first token.
func reanchor(expr Expr, _ Location) Expr { return expr }

func (p *Parser) arrayLiteral() (Expr, error) {
	start := p.previous().Start
	var elements []Expr
	if !p.check(RightBracket) {
		for {
			elem, err := p.expression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
			if !p.match(Comma) {
				break
			}
		}
	}
	if _, err := p.consume(RightBracket, "expected ']' after array literal"); err != nil {
		return nil, err
	}
	return &ArrayLiteral{base: base{start}, Elements: elements}, nil
}

func (p *Parser) objectLiteral() (Expr, error) {
	start := p.previous().Start
	var fields []ObjectField
	if !p.check(RightBrace) {
		for {
			keyTok, err := p.consume(String, "expected string key in object literal")
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(Colon, "expected ':' after object key"); err != nil {
				return nil, err
			}
			value, err := p.expression()
			if err != nil {
				return nil, err
			}
			fields = append(fields, ObjectField{Key: keyTok.Lexeme, Value: value})
			if !p.match(Comma) {
				break
			}
		}
	}
	if _, err := p.consume(RightBrace, "expected '}' after object literal"); err != nil {
		return nil, err
	}
	return &ObjectLiteral{base: base{start}, Fields: fields}, nil
}
