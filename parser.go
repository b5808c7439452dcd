package crafty

// Parser is a hand-written recursive-descent/Pratt-style engine that turns
// a filtered token stream into a statement list. It maintains a cursor with
// single-token lookahead (current, previous) and stops at the first parse
// error — no statement-level recovery/synchronization in this core.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a Parser over an already-filtered token stream (no
// Whitespace, Newline, or Comment tokens), ending in exactly one Eof.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the whole token stream into a Program. It returns the first
// parse error encountered, if any; on error the returned *Program is nil.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// --- token cursor ----------------------------------------------------------

func (p *Parser) isAtEnd() bool { return p.peek().Kind == Eof }

func (p *Parser) peek() Token { return p.tokens[p.current] }

func (p *Parser) previous() Token { return p.tokens[p.current-1] }

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return kind == Eof
	}
	return p.peek().Kind == kind
}

// match advances and returns true if the current token's kind is among
// kinds, else returns false without advancing.
func (p *Parser) match(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it matches kind, else fails
// with a position-carrying ParseError.
func (p *Parser) consume(kind TokenKind, message string) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, newParseError("token", message, p.peek())
}

// --- declarations & statements ----------------------------------------------

func (p *Parser) declaration() (Stmt, error) {
	if p.match(Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(Identifier, "expected variable name after 'var'")
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

	if _, err := p.consume(Semicolon, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(Print):
		return p.printStatement()
	case p.match(If):
		return p.ifStatement()
	case p.match(While):
		return p.whileStatement()
	case p.match(For):
		return p.forStatement()
	case p.match(LeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Statements: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(Semicolon, "expected ';' after value"); err != nil {
		return nil, err
	}
	return &PrintStmt{Expression: value}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(Semicolon, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expression: expr}, nil
}

func (p *Parser) block() ([]Stmt, error) {
	var stmts []Stmt
	for !p.check(RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(RightBrace, "expected '}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(LeftParen, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RightParen, "expected ')' after if condition"); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch Stmt
	if p.match(Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{Condition: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (Stmt, error) {
	if _, err := p.consume(LeftParen, "expected '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RightParen, "expected ')' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: cond, Body: body}, nil
}

// forStatement desugars `for (init; cond; step) body` into:
//
//	Block[ init, While(cond_or_true, Block[ body, Expression(step) ]) ]
//
// dropping the outer block when init is absent, substituting BoolLiteral
// true when cond is absent, and dropping the inner wrapping block when
// step is absent. The condition's semicolon and the closing ')' are
// always required.
func (p *Parser) forStatement() (Stmt, error) {
	if _, err := p.consume(LeftParen, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var initializer Stmt
	var err error
	switch {
	case p.match(Semicolon):
		initializer = nil
	case p.match(Var):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition Expr
	if !p.check(Semicolon) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(Semicolon, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(RightParen) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(RightParen, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}

	if condition == nil {
		condition = &BoolLiteral{Value: true}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}

	return body, nil
}
