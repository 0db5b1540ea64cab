package polonio

// Expr is any expression node. Every variant also carries the Location of
// its leading token so the evaluator can attribute runtime errors.
type Expr interface {
	exprNode()
	Loc() Location
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
	Loc() Location
}

// Program is an ordered sequence of top-level statements.
type Program struct {
	Statements []Stmt
}

type base struct {
	At Location
}

func (b base) Loc() Location { return b.At }

// Literal wraps an internal tagged representation such as num(42),
// str("hi"), bool(true), or null; decoding happens in the evaluator.
type Literal struct {
	base
	Repr string
}

func (*Literal) exprNode() {}

type Identifier struct {
	base
	Name string
}

func (*Identifier) exprNode() {}

type Unary struct {
	base
	Op      string
	Operand Expr
}

func (*Unary) exprNode() {}

type Binary struct {
	base
	Op    string
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}

type ArrayLiteral struct {
	base
	Elements []Expr
}

func (*ArrayLiteral) exprNode() {}

// ObjectField is one key:value pair of an ObjectLiteral, in declared order.
// Key is the raw string-literal token text (still quote-wrapped and
// escape-encoded); it is decoded the same way string literals are.
type ObjectField struct {
	Key   string
	Value Expr
}

type ObjectLiteral struct {
	base
	Fields []ObjectField
}

func (*ObjectLiteral) exprNode() {}

type Call struct {
	base
	Callee Expr
	Args   []Expr
}

func (*Call) exprNode() {}

type Index struct {
	base
	Object Expr
	Index  Expr
}

func (*Index) exprNode() {}

// Assignment targets must be validated by the parser to be Identifier or
// Index; Op is one of = += -= *= /= %= ..=.
type Assignment struct {
	base
	Target Expr
	Op     string
	Value  Expr
}

func (*Assignment) exprNode() {}

type VarDecl struct {
	base
	Name        string
	Initializer Expr // nil when absent
}

func (*VarDecl) stmtNode() {}

type Echo struct {
	base
	Expr Expr
}

func (*Echo) stmtNode() {}

type ExprStmt struct {
	base
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// IfBranch is one if/elseif arm.
type IfBranch struct {
	Cond Expr
	Body []Stmt
}

type If struct {
	base
	Branches []IfBranch
	ElseBody []Stmt // nil when absent
}

func (*If) stmtNode() {}

type While struct {
	base
	Cond Expr
	Body []Stmt
}

func (*While) stmtNode() {}

// For binds ValueName to each element/value and, when IndexName is
// non-empty, the 0-based index (arrays) or key (objects) too.
type For struct {
	base
	IndexName string
	ValueName string
	Iterable  Expr
	Body      []Stmt
}

func (*For) stmtNode() {}

type FunctionDecl struct {
	base
	Name   string
	Params []string
	Body   []Stmt
}

func (*FunctionDecl) stmtNode() {}

type Return struct {
	base
	Value Expr // nil when absent
}

func (*Return) stmtNode() {}
