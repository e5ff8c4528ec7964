package parser

import "fmt"

// TokenType defines the token kinds produced by the lexer.
type TokenType int

const (
	TokenIdent     TokenType = iota // predicate, constant or variable name
	TokenTilde                      // '~'
	TokenAmp                        // '&'
	TokenPipe                       // '|'
	TokenArrow                      // '->'
	TokenLParen                     // '('
	TokenRParen                     // ')'
	TokenComma                      // ','
	TokenLBracket                   // '['
	TokenRBracket                   // ']'
	TokenForall                     // '∀'
	TokenExists                     // '∃'
	TokenTurnstile                  // '|-'
	TokenEOF                        // end of input
)

func (t TokenType) String() string {
	switch t {
	case TokenIdent:
		return "identifier"
	case TokenTilde:
		return "'~'"
	case TokenAmp:
		return "'&'"
	case TokenPipe:
		return "'|'"
	case TokenArrow:
		return "'->'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenComma:
		return "','"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	case TokenForall:
		return "'∀'"
	case TokenExists:
		return "'∃'"
	case TokenTurnstile:
		return "'|-'"
	case TokenEOF:
		return "end of input"
	default:
		return "?"
	}
}

// Token is a single lexical token with its starting byte position.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// ParseError reports a lexical or syntactic problem with its byte
// position in the input.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
}

func errorf(pos int, format string, args ...any) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
