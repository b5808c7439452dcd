package crafty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseSource(t *testing.T, source string) *Program {
	t.Helper()
	tokens := NewScanner(source, nil).Filtered()
	prog, err := NewParser(tokens).Parse()
	assert.NoError(t, err)
	return prog
}

func TestParserVarDeclarationWithInitializer(t *testing.T) {
	prog := parseSource(t, "var x = 1;")
	stmt, ok := prog.Statements[0].(*VarStmt)
	assert.True(t, ok)
	assert.Equal(t, "x", stmt.Name.Lexeme)
	assert.NotNil(t, stmt.Initializer)
}

func TestParserVarDeclarationWithoutInitializer(t *testing.T) {
	prog := parseSource(t, "var x;")
	stmt, ok := prog.Statements[0].(*VarStmt)
	assert.True(t, ok)
	assert.Nil(t, stmt.Initializer)
}

func TestParserBlockStatement(t *testing.T) {
	prog := parseSource(t, "{ var x = 1; print x; }")
	block, ok := prog.Statements[0].(*BlockStmt)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 2)
}

func TestParserIfElse(t *testing.T) {
	prog := parseSource(t, "if (true) print 1; else print 2;")
	stmt, ok := prog.Statements[0].(*IfStmt)
	assert.True(t, ok)
	assert.NotNil(t, stmt.Then)
	assert.NotNil(t, stmt.Else)
}

func TestParserIfWithoutElse(t *testing.T) {
	prog := parseSource(t, "if (true) print 1;")
	stmt, ok := prog.Statements[0].(*IfStmt)
	assert.True(t, ok)
	assert.Nil(t, stmt.Else)
}

func TestParserWhile(t *testing.T) {
	prog := parseSource(t, "while (true) print 1;")
	stmt, ok := prog.Statements[0].(*WhileStmt)
	assert.True(t, ok)
	assert.NotNil(t, stmt.Condition)
}

func TestParserForDesugarsToBlockWhileBlock(t *testing.T) {
	prog := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	outer, ok := prog.Statements[0].(*BlockStmt)
	assert.True(t, ok)
	assert.Len(t, outer.Statements, 2)

	_, initIsVar := outer.Statements[0].(*VarStmt)
	assert.True(t, initIsVar)

	while, ok := outer.Statements[1].(*WhileStmt)
	assert.True(t, ok)
	cond, ok := while.Condition.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, Less, cond.Op)

	body, ok := while.Body.(*BlockStmt)
	assert.True(t, ok)
	assert.Len(t, body.Statements, 2)
	_, lastIsIncrement := body.Statements[1].(*ExpressionStmt)
	assert.True(t, lastIsIncrement)
}

func TestParserForOmitsAbsentClauses(t *testing.T) {
	prog := parseSource(t, "for (;;) print 1;")
	// no initializer -> no outer Block, straight to a While
	while, ok := prog.Statements[0].(*WhileStmt)
	assert.True(t, ok)
	lit, ok := while.Condition.(*BoolLiteral)
	assert.True(t, ok)
	assert.True(t, lit.Value)

	// no step -> body is not wrapped in an extra Block
	_, bodyIsBlock := while.Body.(*BlockStmt)
	assert.False(t, bodyIsBlock)
}

func TestParserMissingSemicolonIsParseError(t *testing.T) {
	tokens := NewScanner("var x = 1", nil).Filtered()
	_, err := NewParser(tokens).Parse()
	assert.Error(t, err)
}

func TestParserReportsEOFPosition(t *testing.T) {
	tokens := NewScanner("var x =", nil).Filtered()
	_, err := NewParser(tokens).Parse()
	assert.ErrorContains(t, err, "end of file")
}
