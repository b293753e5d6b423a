package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// node is an expression tree node.
type node interface{ pos() int }

type (
	// numberLit is a number with an optional unit, "5" or "5 m".
	numberLit struct {
		at    int
		value float64
		unit  string
	}
	// kindCall tags its argument with a kind, "radius(5 m)".
	kindCall struct {
		at   int
		name string
		arg  node
	}
	unaryExpr struct {
		at int
		op tokenType
		x  node
	}
	binaryExpr struct {
		at   int
		op   tokenType
		l, r node
	}
	// inExpr converts its operand to a unit, "radius(5 m) in cm".
	inExpr struct {
		at   int
		x    node
		unit string
	}
)

func (n *numberLit) pos() int  { return n.at }
func (n *kindCall) pos() int   { return n.at }
func (n *unaryExpr) pos() int  { return n.at }
func (n *binaryExpr) pos() int { return n.at }
func (n *inExpr) pos() int     { return n.at }

// Operator precedences, lowest first.
const (
	_ int = iota
	lowest
	sum
	product
	prefix
)

var precedences = map[tokenType]int{
	tokPlus:  sum,
	tokMinus: sum,
	tokStar:  product,
	tokSlash: product,
}

// parser is a Pratt parser over the lexer's tokens.
type parser struct {
	l     *lexer
	input string
	cur   token
	peek  token
}

// parse parses a complete expression.
func parse(input string) (node, error) {
	p := &parser{l: newLexer(input), input: input}
	p.advance()
	p.advance()

	n, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if p.peek.typ == tokIdent && p.peek.lit == "in" {
		p.advance()
		at := p.cur.pos
		rest := strings.TrimSpace(input[p.cur.pos+len(p.cur.lit):])
		if rest == "" {
			return nil, p.errorf(p.cur.pos, "missing unit after 'in'")
		}
		return &inExpr{at: at, x: n, unit: rest}, nil
	}
	if p.peek.typ != tokEOF {
		return nil, p.errorf(p.peek.pos, "unexpected %s", p.peek)
	}
	return n, nil
}

func (p *parser) advance() {
	p.cur = p.peek
	p.peek = p.l.next()
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, pos, fmt.Sprintf(format, args...))
}

// parseExpression parses the expression starting at the next token and
// stops before an operator that binds no tighter than precedence.
func (p *parser) parseExpression(precedence int) (node, error) {
	p.advance()
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := precedences[p.peek.typ]
		if !ok || precedence >= prec {
			return left, nil
		}
		p.advance()
		op, at := p.cur.typ, p.cur.pos
		right, err := p.parseExpression(prec)
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{at: at, op: op, l: left, r: right}
	}
}

func (p *parser) parsePrefix() (node, error) {
	switch p.cur.typ {
	case tokNumber:
		return p.parseNumber()
	case tokIdent:
		return p.parseKindCall()
	case tokMinus, tokPlus:
		op, at := p.cur.typ, p.cur.pos
		x, err := p.parseExpression(prefix)
		if err != nil {
			return nil, err
		}
		return &unaryExpr{at: at, op: op, x: x}, nil
	case tokLParen:
		x, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return x, nil
	default:
		return nil, p.errorf(p.cur.pos, "unexpected %s", p.cur)
	}
}

func (p *parser) expect(t tokenType) error {
	if p.peek.typ != t {
		return p.errorf(p.peek.pos, "expected %s, found %s", t, p.peek)
	}
	p.advance()
	return nil
}

func (p *parser) parseNumber() (node, error) {
	at := p.cur.pos
	v, err := strconv.ParseFloat(p.cur.lit, 64)
	if err != nil {
		return nil, p.errorf(at, "bad number %q", p.cur.lit)
	}
	unit, err := p.parseUnit()
	if err != nil {
		return nil, err
	}
	return &numberLit{at: at, value: v, unit: unit}, nil
}

// parseUnit reads an optional unit after a number: symbols with optional
// integer powers joined by "·", such as "m", "m^2" or "m·s^-1". A symbol
// followed by "(" starts a kind call and the keyword "in" starts a
// conversion; neither is part of the unit.
func (p *parser) parseUnit() (string, error) {
	var b strings.Builder
	for p.peek.typ == tokIdent && p.peek.lit != "in" {
		p.advance()
		b.WriteString(p.cur.lit)
		if p.peek.typ == tokCaret {
			p.advance()
			b.WriteByte('^')
			if p.peek.typ == tokMinus {
				p.advance()
				b.WriteByte('-')
			}
			if p.peek.typ != tokNumber {
				return "", p.errorf(p.peek.pos, "expected exponent, found %s", p.peek)
			}
			p.advance()
			b.WriteString(p.cur.lit)
		}
		if p.peek.typ != tokDot {
			break
		}
		p.advance()
		b.WriteString("·")
		if p.peek.typ != tokIdent {
			return "", p.errorf(p.peek.pos, "expected unit after '·', found %s", p.peek)
		}
	}
	if p.peek.typ == tokLParen {
		return "", p.errorf(p.peek.pos, "unit %q cannot be called", b.String())
	}
	return b.String(), nil
}

func (p *parser) parseKindCall() (node, error) {
	at, name := p.cur.pos, p.cur.lit
	if err := p.expect(tokLParen); err != nil {
		return nil, p.errorf(at, "%q is not a kind call; write %s(...)", name, name)
	}
	arg, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return &kindCall{at: at, name: name, arg: arg}, nil
}
