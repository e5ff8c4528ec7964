package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer scans the formula notation and produces tokens.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a new Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the token list,
// ending with an EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		start := l.position
		switch c := l.input[l.position]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.position++

		case c == '~':
			l.addToken(TokenTilde, "~", start)
			l.position++

		case c == '&':
			l.addToken(TokenAmp, "&", start)
			l.position++

		case c == '|':
			// '|-' is the inference separator; a lone '|' is disjunction
			if l.position+1 < len(l.input) && l.input[l.position+1] == '-' {
				l.addToken(TokenTurnstile, "|-", start)
				l.position += 2
			} else {
				l.addToken(TokenPipe, "|", start)
				l.position++
			}

		case c == '-':
			if l.position+1 < len(l.input) && l.input[l.position+1] == '>' {
				l.addToken(TokenArrow, "->", start)
				l.position += 2
			} else {
				return nil, errorf(start, "unexpected '-' (did you mean '->')")
			}

		case c == '(':
			l.addToken(TokenLParen, "(", start)
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")", start)
			l.position++

		case c == ',':
			l.addToken(TokenComma, ",", start)
			l.position++

		case c == '[':
			l.addToken(TokenLBracket, "[", start)
			l.position++

		case c == ']':
			l.addToken(TokenRBracket, "]", start)
			l.position++

		case strings.HasPrefix(l.input[l.position:], "∀"):
			l.addToken(TokenForall, "∀", start)
			l.position += len("∀")

		case strings.HasPrefix(l.input[l.position:], "∃"):
			l.addToken(TokenExists, "∃", start)
			l.position += len("∃")

		default:
			r, _ := utf8.DecodeRuneInString(l.input[l.position:])
			if unicode.IsLetter(r) {
				l.lexIdent(start)
				continue
			}
			return nil, errorf(start, "unexpected character %q", r)
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexIdent scans an identifier: a letter followed by letters, digits or
// underscores.
func (l *Lexer) lexIdent(startPos int) {
	start := l.position
	for l.position < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.position += size
	}
	l.addToken(TokenIdent, l.input[start:l.position], startPos)
}

func (l *Lexer) addToken(t TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{Type: t, Value: value, Position: pos})
}
