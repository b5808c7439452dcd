package crafty

import (
	"fmt"

	"github.com/juju/errors"
)

// ParseError is a malformed-syntax error: a message plus the offending
// token's position and lexeme (or an end-of-file marker).
type ParseError struct {
	Message string
	Line    int
	Column  int
	Lexeme  string
	AtEOF   bool
}

// Error renders the parser's required single-line format:
//
//	at EOF:        "<message> at end of file <line>:<column>"
//	otherwise:     "<message> at '<lexeme>' line <line>:<column>"
func (e *ParseError) Error() string {
	if e.AtEOF {
		return fmt.Sprintf("%s at end of file %d:%d", e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("%s at '%s' line %d:%d", e.Message, e.Lexeme, e.Line, e.Column)
}

// newParseError builds a ParseError for tok, wrapped with a juju/errors
// annotation naming the parser production that raised it, so a caller
// holding only the wrapped error can still recover the structured cause
// via errors.Cause.
func newParseError(production, message string, tok Token) error {
	pe := &ParseError{
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
		Lexeme:  tok.Lexeme,
		AtEOF:   tok.Kind == Eof,
	}
	return errors.Annotatef(pe, "parsing %s", production)
}

// RuntimeError is a type mismatch, undefined variable, integer
// division-by-zero, or literal parse failure discovered while evaluating
// the AST.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// newRuntimeError builds a RuntimeError, wrapped with a juju/errors
// annotation naming the statement or expression kind that raised it.
func newRuntimeError(where, format string, args ...any) error {
	re := &RuntimeError{Message: fmt.Sprintf(format, args...)}
	return errors.Annotatef(re, "evaluating %s", where)
}
