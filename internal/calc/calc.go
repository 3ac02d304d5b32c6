// Package calc evaluates infix arithmetic expressions over
// arbitrary-precision integers.
//
// The supported grammar, with the usual precedence of '*' over '+' and
// '-', is:
//
//	expr   ::= term { ('+' | '-') term }
//	term   ::= factor { '*' factor }
//	factor ::= '-' factor | '(' expr ')' | integer
//
// Integer literals are scanned with [bigint.Read], so leading zeros are
// accepted and discarded.
package calc

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/bigint"
)

// ErrSyntax indicates an expression that does not match the grammar.
var ErrSyntax = errors.New("invalid expression")

// Eval evaluates an expression and returns its value.
// The entire input must be consumed; trailing characters after a valid
// expression yield an error wrapping [ErrSyntax].
func Eval(expr string) (bigint.Int, error) {
	p := &parser{r: bufio.NewReader(strings.NewReader(expr))}
	v, err := p.expr()
	if err != nil {
		return bigint.Int{}, err
	}
	p.skipSpace()
	if b, ok := p.peek(); ok {
		return bigint.Int{}, fmt.Errorf("unexpected character %q: %w", b, ErrSyntax)
	}
	return v, nil
}

type parser struct {
	r *bufio.Reader
}

func (p *parser) expr() (bigint.Int, error) {
	v, err := p.term()
	if err != nil {
		return bigint.Int{}, err
	}
	for {
		p.skipSpace()
		b, ok := p.peek()
		if !ok || (b != '+' && b != '-') {
			return v, nil
		}
		p.advance()
		w, err := p.term()
		if err != nil {
			return bigint.Int{}, err
		}
		if b == '+' {
			v = v.Add(w)
		} else {
			v = v.Sub(w)
		}
	}
}

func (p *parser) term() (bigint.Int, error) {
	v, err := p.factor()
	if err != nil {
		return bigint.Int{}, err
	}
	for {
		p.skipSpace()
		if b, ok := p.peek(); !ok || b != '*' {
			return v, nil
		}
		p.advance()
		w, err := p.factor()
		if err != nil {
			return bigint.Int{}, err
		}
		v = v.Mul(w)
	}
}

func (p *parser) factor() (bigint.Int, error) {
	p.skipSpace()
	b, ok := p.peek()
	switch {
	case !ok:
		return bigint.Int{}, fmt.Errorf("unexpected end of expression: %w", ErrSyntax)
	case b == '(':
		p.advance()
		v, err := p.expr()
		if err != nil {
			return bigint.Int{}, err
		}
		p.skipSpace()
		if c, ok := p.peek(); !ok || c != ')' {
			return bigint.Int{}, fmt.Errorf("missing closing parenthesis: %w", ErrSyntax)
		}
		p.advance()
		return v, nil
	case b == '-':
		// A minus directly followed by a digit is a negative literal and
		// is handled by the number scanner; anything else negates the
		// following factor.
		if buf, _ := p.r.Peek(2); len(buf) == 2 && isDigit(buf[1]) {
			return bigint.Read(p.r)
		}
		p.advance()
		v, err := p.factor()
		if err != nil {
			return bigint.Int{}, err
		}
		return v.Neg(), nil
	case isDigit(b):
		return bigint.Read(p.r)
	default:
		return bigint.Int{}, fmt.Errorf("unexpected character %q: %w", b, ErrSyntax)
	}
}

func (p *parser) skipSpace() {
	for {
		b, ok := p.peek()
		if !ok || (b != ' ' && b != '\t' && b != '\n' && b != '\r') {
			return
		}
		p.advance()
	}
}

func (p *parser) peek() (byte, bool) {
	buf, _ := p.r.Peek(1)
	if len(buf) == 0 {
		return 0, false
	}
	return buf[0], true
}

func (p *parser) advance() {
	if _, err := p.r.Discard(1); err != nil {
		panic(fmt.Sprintf("discarding peeked byte failed: %v", err))
	}
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
