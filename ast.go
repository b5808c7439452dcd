package crafty

// Node is implemented by every AST node, expression or statement.
type Node interface {
	TokenLiteral() string
}

// Expr is implemented by every expression node. Expressions evaluate to a
// Value against an *Environment.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node. Statements are executed for
// effect against an *Environment.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed source file: an ordered list of top-level
// statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// --- Expressions ---------------------------------------------------------

// BoolLiteral is a `true` or `false` literal.
type BoolLiteral struct {
	Value bool
}

func (*BoolLiteral) exprNode()            {}
func (e *BoolLiteral) TokenLiteral() string {
	if e.Value {
		return "true"
	}
	return "false"
}

// IntegerLiteral holds the source lexeme of an integer literal; it is
// parsed to an int64 at evaluation time, not at parse time.
type IntegerLiteral struct {
	Text string
}

func (*IntegerLiteral) exprNode()              {}
func (e *IntegerLiteral) TokenLiteral() string { return e.Text }

// FloatLiteral holds the source lexeme of a float literal; it is parsed to
// a float64 at evaluation time, not at parse time.
type FloatLiteral struct {
	Text string
}

func (*FloatLiteral) exprNode()              {}
func (e *FloatLiteral) TokenLiteral() string { return e.Text }

// StringLiteral holds the source lexeme of a string literal, including the
// surrounding quote characters (the scanner's contract). Evaluation strips
// them.
type StringLiteral struct {
	Text string
}

func (*StringLiteral) exprNode()              {}
func (e *StringLiteral) TokenLiteral() string { return e.Text }

// Variable reads a named binding from the environment stack.
type Variable struct {
	Name Token
}

func (*Variable) exprNode()              {}
func (e *Variable) TokenLiteral() string { return e.Name.Lexeme }

// Assign writes Value to an existing binding named by Name.
type Assign struct {
	Name  Token
	Value Expr
}

func (*Assign) exprNode()              {}
func (e *Assign) TokenLiteral() string { return e.Name.Lexeme }

// Unary applies a prefix operator (Minus or Bang) to Operand.
type Unary struct {
	Op      TokenKind
	OpToken Token
	Operand Expr
}

func (*Unary) exprNode()              {}
func (e *Unary) TokenLiteral() string { return e.OpToken.Lexeme }

// Binary applies an infix arithmetic/comparison/equality operator.
type Binary struct {
	Left    Expr
	Op      TokenKind
	OpToken Token
	Right   Expr
}

func (*Binary) exprNode()              {}
func (e *Binary) TokenLiteral() string { return e.OpToken.Lexeme }

// Logical applies a short-circuiting `and`/`or` operator.
type Logical struct {
	Left    Expr
	Op      TokenKind // And or Or
	OpToken Token
	Right   Expr
}

func (*Logical) exprNode()              {}
func (e *Logical) TokenLiteral() string { return e.OpToken.Lexeme }

// Grouping is an explicitly parenthesized expression, preserved so error
// messages and the pretty-printer can distinguish it from its inner
// expression; evaluation is identity.
type Grouping struct {
	Inner Expr
}

func (*Grouping) exprNode()              {}
func (e *Grouping) TokenLiteral() string { return "(" }

// --- Statements ------------------------------------------------------------

// ExpressionStmt evaluates Expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (*ExpressionStmt) stmtNode()              {}
func (s *ExpressionStmt) TokenLiteral() string { return s.Expression.TokenLiteral() }

// PrintStmt evaluates Expression and writes its stringification to stdout.
type PrintStmt struct {
	Expression Expr
}

func (*PrintStmt) stmtNode()              {}
func (s *PrintStmt) TokenLiteral() string { return "print" }

// VarStmt declares a new binding named Name in the current scope,
// initialized by Initializer (or Nil, if Initializer is nil).
type VarStmt struct {
	Name        Token
	Initializer Expr // nil when absent
}

func (*VarStmt) stmtNode()              {}
func (s *VarStmt) TokenLiteral() string { return "var" }

// BlockStmt executes Statements in a fresh inner scope.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode()              {}
func (s *BlockStmt) TokenLiteral() string { return "{" }

// IfStmt executes Then when Condition is truthy, else Else (if present).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when absent
}

func (*IfStmt) stmtNode()              {}
func (s *IfStmt) TokenLiteral() string { return "if" }

// WhileStmt executes Body repeatedly while Condition evaluates truthy.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode()              {}
func (s *WhileStmt) TokenLiteral() string { return "while" }
