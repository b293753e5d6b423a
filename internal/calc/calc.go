// Package calc evaluates small arithmetic expressions over kind-tagged
// quantities, such as "radius(5 m) * one(2)" or "1 / radius(5 m) in 1/cm".
//
// An operand is a plain number, a bare quantity ("5 m") or a value tagged
// with a kind from the registry ("radius(5 m)"). Operators follow the rules
// of package quantikind, so resolution and mismatch errors surface its
// sentinels unchanged.
package calc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/quantikind"
	"github.com/mesh-intelligence/quantikind/pkg/units"
)

// Evaluation errors.
var (
	ErrSyntax      = errors.New("syntax error")
	ErrOperands    = errors.New("unsupported operands")
	ErrDivByZero   = errors.New("division by zero")
	ErrUnknownKind = errors.New("unknown kind")
)

// Result is the value of an expression. Kind is nil when the result carries
// no kind: a plain number or a bare quantity.
type Result struct {
	Kind     *kinds.Kind
	Quantity units.Quantity[float64]
}

// Number returns the numeric value in the result's unit.
func (r Result) Number() float64 { return r.Quantity.Value() }

// Value returns the result as a kind-tagged value. It fails with
// quantikind.ErrNoKind when the result has no kind.
func (r Result) Value() (quantikind.Value[float64], error) {
	return quantikind.FromQuantity(r.Kind, r.Quantity)
}

func (r Result) String() string {
	if r.Kind == nil {
		return r.Quantity.String()
	}
	v, err := r.Value()
	if err != nil {
		return r.Quantity.String()
	}
	return v.String()
}

// Evaluator evaluates expressions against a kind registry.
type Evaluator struct {
	reg    *kinds.Registry
	logger *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for evaluation records.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an evaluator over reg.
func New(reg *kinds.Registry, opts ...Option) *Evaluator {
	e := &Evaluator{
		reg:    reg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval parses and evaluates expr.
func (e *Evaluator) Eval(expr string) (Result, error) {
	n, err := parse(expr)
	if err != nil {
		return Result{}, err
	}
	op, err := e.eval(n)
	if err != nil {
		return Result{}, err
	}
	r := op.result()
	e.logger.Debug("evaluated", "expr", expr, "result", r.String())
	return r, nil
}

// operandKind classifies an intermediate value.
type operandKind int

const (
	scalar operandKind = iota
	bare
	tagged
)

// operand is an intermediate value: exactly one of s, q or v is meaningful,
// as selected by k.
type operand struct {
	k operandKind
	s float64
	q units.Quantity[float64]
	v quantikind.Value[float64]
}

func (o operand) result() Result {
	switch o.k {
	case scalar:
		return Result{Quantity: units.Dimensionless(o.s)}
	case bare:
		return Result{Quantity: o.q}
	default:
		return Result{Kind: o.v.Kind(), Quantity: o.v.Common()}
	}
}

// quantity returns o as a bare quantity, dropping any kind.
func (o operand) quantity() units.Quantity[float64] {
	switch o.k {
	case scalar:
		return units.Dimensionless(o.s)
	case bare:
		return o.q
	default:
		return o.v.Common()
	}
}

func (o operand) describe() string {
	switch o.k {
	case scalar:
		return "number"
	case bare:
		return "quantity " + o.q.String()
	default:
		return "value " + o.v.String()
	}
}

func (e *Evaluator) eval(n node) (operand, error) {
	switch n := n.(type) {
	case *numberLit:
		if n.unit == "" {
			return operand{k: scalar, s: n.value}, nil
		}
		u, err := units.ParseUnit(n.unit)
		if err != nil {
			return operand{}, err
		}
		return operand{k: bare, q: units.New(n.value, u)}, nil
	case *kindCall:
		return e.evalKindCall(n)
	case *unaryExpr:
		x, err := e.eval(n.x)
		if err != nil {
			return operand{}, err
		}
		if n.op == tokPlus {
			return x, nil
		}
		return negate(x)
	case *binaryExpr:
		l, err := e.eval(n.l)
		if err != nil {
			return operand{}, err
		}
		r, err := e.eval(n.r)
		if err != nil {
			return operand{}, err
		}
		return binary(n.op, l, r)
	case *inExpr:
		x, err := e.eval(n.x)
		if err != nil {
			return operand{}, err
		}
		return convert(x, n.unit)
	}
	return operand{}, fmt.Errorf("%w: unknown node %T", ErrSyntax, n)
}

// evalKindCall tags the argument with the named kind. A number is accepted
// only by dimensionless kinds; a tagged argument is cast, which requires the
// two kinds to be equivalent.
func (e *Evaluator) evalKindCall(n *kindCall) (operand, error) {
	k, err := e.reg.Lookup(n.name)
	if err != nil {
		return operand{}, fmt.Errorf("%w: %s: %w", ErrUnknownKind, n.name, err)
	}
	arg, err := e.eval(n.arg)
	if err != nil {
		return operand{}, err
	}

	var v quantikind.Value[float64]
	switch arg.k {
	case scalar:
		v, err = quantikind.FromNumber(k, arg.s)
	case bare:
		v, err = quantikind.FromQuantity(k, arg.q)
	default:
		v, err = quantikind.Cast(k, arg.v)
	}
	if err != nil {
		return operand{}, err
	}
	return operand{k: tagged, v: v}, nil
}

func negate(x operand) (operand, error) {
	switch x.k {
	case scalar:
		return operand{k: scalar, s: -x.s}, nil
	case bare:
		return operand{k: bare, q: x.q.Neg()}, nil
	default:
		v, err := x.v.Neg()
		if err != nil {
			return operand{}, err
		}
		return operand{k: tagged, v: v}, nil
	}
}

func binary(op tokenType, l, r operand) (operand, error) {
	if op == tokSlash && isZero(r) {
		return operand{}, ErrDivByZero
	}
	switch op {
	case tokPlus, tokMinus:
		return additive(op, l, r)
	default:
		return multiplicative(op, l, r)
	}
}

func isZero(o operand) bool {
	switch o.k {
	case scalar:
		return o.s == 0
	case bare:
		return o.q.Value() == 0
	default:
		return o.v.Number() == 0
	}
}

// additive handles + and -. Both sides must carry a kind or neither must.
// Plain numbers mix with dimensionless quantities.
func additive(op tokenType, l, r operand) (operand, error) {
	if l.k == tagged || r.k == tagged {
		if l.k != r.k {
			return operand{}, fmt.Errorf("%w: %s %s %s", ErrOperands, l.describe(), op, r.describe())
		}
		var v quantikind.Value[float64]
		var err error
		if op == tokPlus {
			v, err = l.v.Add(r.v)
		} else {
			v, err = l.v.Sub(r.v)
		}
		if err != nil {
			return operand{}, err
		}
		return operand{k: tagged, v: v}, nil
	}

	if l.k == scalar && r.k == scalar {
		if op == tokPlus {
			return operand{k: scalar, s: l.s + r.s}, nil
		}
		return operand{k: scalar, s: l.s - r.s}, nil
	}

	var q units.Quantity[float64]
	var err error
	if op == tokPlus {
		q, err = l.quantity().Add(r.quantity())
	} else {
		q, err = l.quantity().Sub(r.quantity())
	}
	if err != nil {
		return operand{}, err
	}
	return operand{k: bare, q: q}, nil
}

// multiplicative handles * and /. A kind-tagged operand keeps or resolves
// its kind as package quantikind defines; the other operand contributes
// only its number or bare quantity. When both carry kinds the left one
// seeds resolution, unless it is dimensionless and the right one is not.
func multiplicative(op tokenType, l, r operand) (operand, error) {
	mul := op == tokStar
	var v quantikind.Value[float64]
	var err error

	switch {
	case l.k == tagged && r.k == scalar:
		if mul {
			v = l.v.MulScalar(r.s)
		} else {
			v = l.v.DivScalar(r.s)
		}
	case l.k == scalar && r.k == tagged:
		if mul {
			v = quantikind.ScalarMul(l.s, r.v)
		} else {
			v, err = quantikind.ScalarDiv(l.s, r.v)
		}
	case l.k == tagged && (r.k != tagged || !l.v.Dimension().IsOne() || r.v.Dimension().IsOne()):
		if mul {
			v, err = l.v.MulQuantity(r.quantity())
		} else {
			v, err = l.v.DivQuantity(r.quantity())
		}
	case r.k == tagged:
		if mul {
			v, err = quantikind.QuantityMul(l.quantity(), r.v)
		} else {
			v, err = quantikind.QuantityDiv(l.quantity(), r.v)
		}
	case l.k == scalar && r.k == scalar:
		if mul {
			return operand{k: scalar, s: l.s * r.s}, nil
		}
		return operand{k: scalar, s: l.s / r.s}, nil
	case r.k == scalar:
		if mul {
			return operand{k: bare, q: l.q.MulScalar(r.s)}, nil
		}
		return operand{k: bare, q: l.q.DivScalar(r.s)}, nil
	default:
		if mul {
			return operand{k: bare, q: l.quantity().Mul(r.quantity())}, nil
		}
		return operand{k: bare, q: l.quantity().Div(r.quantity())}, nil
	}
	if err != nil {
		return operand{}, err
	}
	return operand{k: tagged, v: v}, nil
}

// convert expresses x in the unit parsed from sym.
func convert(x operand, sym string) (operand, error) {
	u, err := units.ParseUnit(sym)
	if err != nil {
		return operand{}, err
	}
	switch x.k {
	case tagged:
		v, err := x.v.In(u)
		if err != nil {
			return operand{}, err
		}
		return operand{k: tagged, v: v}, nil
	default:
		q, err := x.quantity().In(u)
		if err != nil {
			return operand{}, err
		}
		return operand{k: bare, q: q}, nil
	}
}
