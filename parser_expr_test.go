package crafty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseExprString(t *testing.T, source string) Expr {
	t.Helper()
	tokens := NewScanner(source+";", nil).Filtered()
	p := NewParser(tokens)
	prog, err := p.Parse()
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ExpressionStmt)
	assert.True(t, ok)
	return stmt.Expression
}

func TestParserPrecedenceMultiplicationBeforeAddition(t *testing.T) {
	expr := parseExprString(t, "1 + 2 * 3")
	bin, ok := expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, Plus, bin.Op)

	right, ok := bin.Right.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, Star, right.Op)
}

func TestParserLeftAssociativity(t *testing.T) {
	// 1 - 2 - 3 must parse as (1 - 2) - 3, not 1 - (2 - 3)
	expr := parseExprString(t, "1 - 2 - 3")
	outer, ok := expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, Minus, outer.Op)

	left, ok := outer.Left.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, Minus, left.Op)

	_, rightIsLiteral := outer.Right.(*IntegerLiteral)
	assert.True(t, rightIsLiteral)
}

func TestParserLogicalPrecedenceBelowEquality(t *testing.T) {
	expr := parseExprString(t, "a == 1 and b == 2")
	logical, ok := expr.(*Logical)
	assert.True(t, ok)
	assert.Equal(t, And, logical.Op)
	_, leftIsEquality := logical.Left.(*Binary)
	assert.True(t, leftIsEquality)
}

func TestParserAssignmentRightAssociative(t *testing.T) {
	expr := parseExprString(t, "a = b = 1")
	assign, ok := expr.(*Assign)
	assert.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
	inner, ok := assign.Value.(*Assign)
	assert.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParserInvalidAssignmentTarget(t *testing.T) {
	tokens := NewScanner("1 = 2;", nil).Filtered()
	p := NewParser(tokens)
	_, err := p.Parse()
	assert.ErrorContains(t, err, "Invalid assignment target.")
}

func TestParserGroupingOverridesPrecedence(t *testing.T) {
	expr := parseExprString(t, "(1 + 2) * 3")
	bin, ok := expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, Star, bin.Op)
	_, leftIsGroup := bin.Left.(*Grouping)
	assert.True(t, leftIsGroup)
}

func TestParserUnterminatedStringIsParseError(t *testing.T) {
	tokens := NewScanner(`print "oops;`, nil).Filtered()
	p := NewParser(tokens)
	_, err := p.Parse()
	assert.ErrorContains(t, err, "Unterminated string.")
}

func TestParserUnaryChain(t *testing.T) {
	expr := parseExprString(t, "!!true")
	outer, ok := expr.(*Unary)
	assert.True(t, ok)
	assert.Equal(t, Bang, outer.Op)
	inner, ok := outer.Operand.(*Unary)
	assert.True(t, ok)
	assert.Equal(t, Bang, inner.Op)
}
