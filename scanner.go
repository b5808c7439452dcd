package crafty

import "go.uber.org/zap"

// Scanner turns a complete source string into a stream of tokens. It never
// fails the pipeline: an unrecognized character yields an Unknown token and
// scanning continues, leaving the decision of whether that is fatal to the
// parser.
type Scanner struct {
	source string
	start  int
	pos    int
	line   int
	column int
	log    *zap.Logger
}

// NewScanner creates a Scanner over the given source text. A nil logger
// disables debug tracing (equivalent to zap.NewNop()).
func NewScanner(source string, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{source: source, line: 1, column: 0, log: log}
}

// Tokenize scans the entire source and returns every token it produces,
// including trivia, terminated by exactly one Eof token.
func (s *Scanner) Tokenize() []Token {
	var tokens []Token
	for {
		tok := s.next()
		tokens = append(tokens, tok)
		s.log.Debug("scanned token",
			zap.String("kind", tok.Kind.String()),
			zap.String("lexeme", tok.Lexeme),
			zap.Int("line", tok.Line),
			zap.Int("column", tok.Column),
		)
		if tok.Kind == Eof {
			return tokens
		}
	}
}

// Filtered scans the source and drops Whitespace, Newline, and Comment
// tokens, the stream the Parser consumes.
func (s *Scanner) Filtered() []Token {
	all := s.Tokenize()
	out := make([]Token, 0, len(all))
	for _, t := range all {
		switch t.Kind {
		case Whitespace, Newline, Comment:
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Scanner) atEnd() bool {
	return s.pos >= len(s.source)
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.pos]
}

func (s *Scanner) peekNext() byte {
	if s.pos+1 >= len(s.source) {
		return 0
	}
	return s.source[s.pos+1]
}

func (s *Scanner) advance() byte {
	ch := s.source[s.pos]
	s.pos++
	s.column++
	return ch
}

// next produces the single next token, starting at s.pos, and advances the
// scanner past it.
func (s *Scanner) next() Token {
	s.start = s.pos
	startLine, startColumn := s.line, s.column

	if s.atEnd() {
		return s.make(Eof, "", startLine, startColumn)
	}

	ch := s.advance()

	switch ch {
	case '(':
		return s.make(LeftParen, "(", startLine, startColumn)
	case ')':
		return s.make(RightParen, ")", startLine, startColumn)
	case '{':
		return s.make(LeftBrace, "{", startLine, startColumn)
	case '}':
		return s.make(RightBrace, "}", startLine, startColumn)
	case ',':
		return s.make(Comma, ",", startLine, startColumn)
	case '.':
		return s.make(Dot, ".", startLine, startColumn)
	case '-':
		return s.make(Minus, "-", startLine, startColumn)
	case '+':
		return s.make(Plus, "+", startLine, startColumn)
	case ';':
		return s.make(Semicolon, ";", startLine, startColumn)
	case '*':
		return s.make(Star, "*", startLine, startColumn)
	case '!':
		if s.peek() == '=' {
			s.advance()
			return s.make(BangEqual, "!=", startLine, startColumn)
		}
		return s.make(Bang, "!", startLine, startColumn)
	case '=':
		if s.peek() == '=' {
			s.advance()
			return s.make(EqualEqual, "==", startLine, startColumn)
		}
		return s.make(Equal, "=", startLine, startColumn)
	case '<':
		if s.peek() == '=' {
			s.advance()
			return s.make(LessEqual, "<=", startLine, startColumn)
		}
		return s.make(Less, "<", startLine, startColumn)
	case '>':
		if s.peek() == '=' {
			s.advance()
			return s.make(GreaterEqual, ">=", startLine, startColumn)
		}
		return s.make(Greater, ">", startLine, startColumn)
	case '/':
		if s.peek() == '/' {
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
			return s.make(Comment, s.source[s.start:s.pos], startLine, startColumn)
		}
		return s.make(Slash, "/", startLine, startColumn)
	case ' ', '\t', '\r':
		for !s.atEnd() && isHorizontalSpace(s.peek()) {
			s.advance()
		}
		return s.make(Whitespace, s.source[s.start:s.pos], startLine, startColumn)
	case '\n':
		tok := s.make(Newline, "\n", startLine, startColumn)
		s.line++
		s.column = 0
		return tok
	case '"':
		return s.scanString(startLine, startColumn)
	default:
		if isDigit(ch) {
			return s.scanNumber(startLine, startColumn)
		}
		if isAlpha(ch) {
			return s.scanIdentifier(startLine, startColumn)
		}
		return s.make(Unknown, string(ch), startLine, startColumn)
	}
}

func (s *Scanner) scanString(startLine, startColumn int) Token {
	for !s.atEnd() && s.peek() != '"' {
		if s.advance() == '\n' {
			s.line++
			s.column = 0
		}
	}
	if !s.atEnd() {
		s.advance() // closing quote
	}
	// Unterminated strings are left for the parser to report; the lexeme
	// still covers exactly what was consumed, per the scanner's contract.
	return s.make(Str, s.source[s.start:s.pos], startLine, startColumn)
}

func (s *Scanner) scanNumber(startLine, startColumn int) Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	kind := Integer
	if s.peek() == '.' && isDigit(s.peekNext()) {
		kind = Float
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	return s.make(kind, s.source[s.start:s.pos], startLine, startColumn)
}

func (s *Scanner) scanIdentifier(startLine, startColumn int) Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.pos]
	kind, ok := keywords[text]
	if !ok {
		kind = Identifier
	}
	return s.make(kind, text, startLine, startColumn)
}

func (s *Scanner) make(kind TokenKind, lexeme string, line, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
}

func isHorizontalSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\r' }
func isDigit(ch byte) bool           { return ch >= '0' && ch <= '9' }
func isAlpha(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
func isAlphaNumeric(ch byte) bool { return isAlpha(ch) || isDigit(ch) }
