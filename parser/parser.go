package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/gnolang/wktab/internal/logic"
)

// Parser consumes a token stream and builds formulas.
//
// Grammar, loosest to tightest binding:
//
//	inference  = [ formula { "," formula } ] "|-" formula
//	formula    = disjunct [ "->" formula ]          (right associative)
//	disjunct   = conjunct { "|" conjunct }
//	conjunct   = unary { "&" unary }
//	unary      = "~" unary | quantified | primary
//	quantified = "[" ("∀" | "∃") VARIABLE formula "]" unary
//	primary    = IDENT [ "(" term { "," term } ")" ] | "(" formula ")"
//
// An identifier starting with an uppercase letter is a variable in term
// position; any other identifier is a constant. Predicate and
// proposition names carry no case restriction.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a parser over a token stream.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseFormula parses a single formula from the input notation.
func ParseFormula(input string) (logic.Formula, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens)
	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenEOF); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseInference parses "premise, ..., premise |- conclusion". The
// premise list may be empty.
func ParseInference(input string) (premises []logic.Formula, conclusion logic.Formula, err error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, nil, err
	}
	p := NewParser(tokens)

	if p.peek().Type != TokenTurnstile {
		for {
			f, err := p.parseFormula()
			if err != nil {
				return nil, nil, err
			}
			premises = append(premises, f)
			if p.peek().Type != TokenComma {
				break
			}
			p.advance()
		}
	}
	if err := p.expect(TokenTurnstile); err != nil {
		return nil, nil, err
	}
	conclusion, err = p.parseFormula()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expect(TokenEOF); err != nil {
		return nil, nil, err
	}
	return premises, conclusion, nil
}

func (p *Parser) parseFormula() (logic.Formula, error) {
	left, err := p.parseDisjunct()
	if err != nil {
		return nil, err
	}
	if p.peek().Type == TokenArrow {
		p.advance()
		right, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		return logic.Implies(left, right), nil
	}
	return left, nil
}

func (p *Parser) parseDisjunct() (logic.Formula, error) {
	left, err := p.parseConjunct()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenPipe {
		p.advance()
		right, err := p.parseConjunct()
		if err != nil {
			return nil, err
		}
		left = logic.Or(left, right)
	}
	return left, nil
}

func (p *Parser) parseConjunct() (logic.Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenAmp {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = logic.And(left, right)
	}
	return left, nil
}

func (p *Parser) parseUnary() (logic.Formula, error) {
	switch tok := p.peek(); tok.Type {
	case TokenTilde:
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return logic.Not(inner), nil
	case TokenLBracket:
		return p.parseQuantified()
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parseQuantified() (logic.Formula, error) {
	if err := p.expect(TokenLBracket); err != nil {
		return nil, err
	}

	q := p.peek()
	if q.Type != TokenForall && q.Type != TokenExists {
		return nil, errorf(q.Position, "expected '∀' or '∃', got %s", q.Type)
	}
	p.advance()

	v := p.peek()
	if v.Type != TokenIdent {
		return nil, errorf(v.Position, "expected bound variable, got %s", v.Type)
	}
	if !startsUpper(v.Value) {
		return nil, errorf(v.Position, "bound variable %q must start with an uppercase letter", v.Value)
	}
	p.advance()
	bound := logic.Var(v.Value)

	restriction, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRBracket); err != nil {
		return nil, err
	}
	matrix, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if q.Type == TokenForall {
		return logic.Forall(bound, restriction, matrix), nil
	}
	return logic.Exists(bound, restriction, matrix), nil
}

func (p *Parser) parsePrimary() (logic.Formula, error) {
	switch tok := p.peek(); tok.Type {
	case TokenLParen:
		p.advance()
		f, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return f, nil
	case TokenIdent:
		p.advance()
		if p.peek().Type != TokenLParen {
			return logic.NewAtom(tok.Value), nil
		}
		p.advance()
		args, err := p.parseTermList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return logic.NewAtom(tok.Value, args...), nil
	default:
		return nil, errorf(tok.Position, "expected formula, got %s", tok.Type)
	}
}

func (p *Parser) parseTermList() ([]logic.Term, error) {
	var terms []logic.Term
	for {
		tok := p.peek()
		if tok.Type != TokenIdent {
			return nil, errorf(tok.Position, "expected term, got %s", tok.Type)
		}
		p.advance()
		if startsUpper(tok.Value) {
			terms = append(terms, logic.Var(tok.Value))
		} else {
			terms = append(terms, logic.Const(tok.Value))
		}
		if p.peek().Type != TokenComma {
			return terms, nil
		}
		p.advance()
	}
}

func (p *Parser) peek() Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	// Tokenize always ends the stream with EOF, but hand-built token
	// slices may not; keep the reported position a real input offset
	if n := len(p.tokens); n > 0 {
		return Token{Type: TokenEOF, Position: p.tokens[n-1].Position}
	}
	return Token{Type: TokenEOF}
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

func (p *Parser) expect(t TokenType) error {
	tok := p.peek()
	if tok.Type != t {
		return errorf(tok.Position, "expected %s, got %s", t, tok.Type)
	}
	p.advance()
	return nil
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
