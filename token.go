// Package crafty implements a tree-walking interpreter for a small
// dynamically-typed scripting language in the Lox family, extended with a
// distinction between integer and floating-point literals.
package crafty

import "fmt"

// TokenKind classifies a lexical token produced by the Scanner.
type TokenKind int

const (
	// Punctuation
	LeftParen TokenKind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// Comparison / assignment
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals
	Identifier
	Str
	Integer
	Float

	// Keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// Trivia
	Comment
	Whitespace
	Newline
	Unknown

	// Sentinel
	Eof
)

var tokenKindNames = map[TokenKind]string{
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	Comma:        "Comma",
	Dot:          "Dot",
	Minus:        "Minus",
	Plus:         "Plus",
	Semicolon:    "Semicolon",
	Slash:        "Slash",
	Star:         "Star",
	Bang:         "Bang",
	BangEqual:    "BangEqual",
	Equal:        "Equal",
	EqualEqual:   "EqualEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Identifier:   "Identifier",
	Str:          "Str",
	Integer:      "Integer",
	Float:        "Float",
	And:          "And",
	Class:        "Class",
	Else:         "Else",
	False:        "False",
	Fun:          "Fun",
	For:          "For",
	If:           "If",
	Nil:          "Nil",
	Or:           "Or",
	Print:        "Print",
	Return:       "Return",
	Super:        "Super",
	This:         "This",
	True:         "True",
	Var:          "Var",
	While:        "While",
	Comment:      "Comment",
	Whitespace:   "Whitespace",
	Newline:      "Newline",
	Unknown:      "Unknown",
	Eof:          "Eof",
}

// String renders the TokenKind's name, falling back to its numeric value
// for anything outside the closed enumeration.
func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// keywords maps reserved words to their TokenKind. Identifiers that don't
// appear here are emitted as Identifier.
var keywords = map[string]TokenKind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Token is an immutable record of one lexical unit: its kind, the exact
// source substring it covers, and the 1-based line / 0-based column of its
// first character.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
}

// String renders a token for diagnostics as Kind("lexeme") line:column.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q) %d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}

// IsEOF reports whether t is the scanner's terminal sentinel token.
func (t Token) IsEOF() bool {
	return t.Kind == Eof
}
