package quantikind

import (
	"fmt"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/units"
)

// Pos returns v unchanged.
func (v Value[R]) Pos() Value[R] { return v }

// Neg returns -v. The dimension is unchanged, so the kind resolves to v's
// own kind.
func (v Value[R]) Neg() (Value[R], error) {
	if v.kind == nil {
		return Value[R]{}, ErrNoKind
	}
	return resolved(v.kind, v.q.Neg())
}

// Inc adds one unit to v in place.
func (v *Value[R]) Inc() { v.q.Inc() }

// Dec subtracts one unit from v in place.
func (v *Value[R]) Dec() { v.q.Dec() }

// AddAssign adds o to v in place. v keeps its kind; its unit changes only
// as units.Quantity.Add describes for integer representations.
func (v *Value[R]) AddAssign(o Value[R]) error {
	if err := equivalent("+=", v.kind, o.kind); err != nil {
		return err
	}
	return v.q.AddAssign(o.q)
}

// SubAssign subtracts o from v in place. v keeps its kind.
func (v *Value[R]) SubAssign(o Value[R]) error {
	if err := equivalent("-=", v.kind, o.kind); err != nil {
		return err
	}
	return v.q.SubAssign(o.q)
}

// MulAssign scales v by s in place.
func (v *Value[R]) MulAssign(s R) { v.q.MulAssign(s) }

// DivAssign divides v by s in place.
func (v *Value[R]) DivAssign(s R) { v.q.DivAssign(s) }

// ModAssign replaces v with v mod s.
func ModAssign[R units.Integer](v *Value[R], s R) {
	units.ModAssign(&v.q, s)
}

// ModAssignValue replaces v with v mod o. o must be kind-equivalent to v.
func ModAssignValue[R units.Integer](v *Value[R], o Value[R]) error {
	r, err := ModValue(*v, o)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// Add returns v+o in v's kind, expressed in v's unit unless o is not whole
// in it; integer sums then use o's finer unit.
func (v Value[R]) Add(o Value[R]) (Value[R], error) {
	if err := equivalent("+", v.kind, o.kind); err != nil {
		return Value[R]{}, err
	}
	q, err := v.q.Add(o.q)
	if err != nil {
		return Value[R]{}, err
	}
	return Value[R]{kind: v.kind, q: q}, nil
}

// Sub returns v-o in v's kind, in the unit Add would use.
func (v Value[R]) Sub(o Value[R]) (Value[R], error) {
	if err := equivalent("-", v.kind, o.kind); err != nil {
		return Value[R]{}, err
	}
	q, err := v.q.Sub(o.q)
	if err != nil {
		return Value[R]{}, err
	}
	return Value[R]{kind: v.kind, q: q}, nil
}

// MulScalar returns v·s with v's kind.
func (v Value[R]) MulScalar(s R) Value[R] {
	return Value[R]{kind: v.kind, q: v.q.MulScalar(s)}
}

// ScalarMul returns s·v with v's kind.
func ScalarMul[R units.Number](s R, v Value[R]) Value[R] {
	return v.MulScalar(s)
}

// DivScalar returns v/s with v's kind.
func (v Value[R]) DivScalar(s R) Value[R] {
	return Value[R]{kind: v.kind, q: v.q.DivScalar(s)}
}

// ScalarDiv returns s/v. The dimension inverts, so the kind is resolved
// from v's kind for the reciprocal dimension.
func ScalarDiv[R units.Number](s R, v Value[R]) (Value[R], error) {
	if v.kind == nil {
		return Value[R]{}, ErrNoKind
	}
	return resolved(v.kind, v.q.Inverse(s))
}

// MulQuantity returns v·q with the kind resolved for the product dimension.
func (v Value[R]) MulQuantity(q units.Quantity[R]) (Value[R], error) {
	if v.kind == nil {
		return Value[R]{}, ErrNoKind
	}
	return resolved(v.kind, v.q.Mul(q))
}

// QuantityMul returns q·v with the kind resolved for the product dimension.
func QuantityMul[R units.Number](q units.Quantity[R], v Value[R]) (Value[R], error) {
	if v.kind == nil {
		return Value[R]{}, ErrNoKind
	}
	return resolved(v.kind, q.Mul(v.q))
}

// DivQuantity returns v/q with the kind resolved for the quotient
// dimension.
func (v Value[R]) DivQuantity(q units.Quantity[R]) (Value[R], error) {
	if v.kind == nil {
		return Value[R]{}, ErrNoKind
	}
	return resolved(v.kind, v.q.Div(q))
}

// QuantityDiv returns q/v with the kind resolved for the quotient
// dimension.
func QuantityDiv[R units.Number](q units.Quantity[R], v Value[R]) (Value[R], error) {
	if v.kind == nil {
		return Value[R]{}, ErrNoKind
	}
	return resolved(v.kind, q.Div(v.q))
}

// Mod returns v mod s with v's kind.
func Mod[R units.Integer](v Value[R], s R) Value[R] {
	return Value[R]{kind: v.kind, q: units.ModScalar(v.q, s)}
}

// ModDimensionless returns v mod q, where q must be dimensionless.
func ModDimensionless[R units.Integer](v Value[R], q units.Quantity[R]) (Value[R], error) {
	if !q.Dimension().IsOne() {
		return Value[R]{}, fmt.Errorf("%w: modulus has dimension %s", ErrNotDimensionless, q.Dimension())
	}
	qv, err := q.In(units.One)
	if err != nil {
		return Value[R]{}, err
	}
	return Mod(v, qv.Value()), nil
}

// ModValue returns a mod b in a's kind, in the unit Add would use. The
// operands must be kind-equivalent.
func ModValue[R units.Integer](a, b Value[R]) (Value[R], error) {
	if err := equivalent("%", a.kind, b.kind); err != nil {
		return Value[R]{}, err
	}
	q, err := units.Mod(a.q, b.q)
	if err != nil {
		return Value[R]{}, err
	}
	return Value[R]{kind: a.kind, q: q}, nil
}

// resolved tags q with the kind seed resolves to for q's dimension.
func resolved[R units.Number](seed *kinds.Kind, q units.Quantity[R]) (Value[R], error) {
	k, err := seed.Resolve(q.Dimension())
	if err != nil {
		return Value[R]{}, fmt.Errorf("resolving kind of %s: %w", q, err)
	}
	return Value[R]{kind: k, q: q}, nil
}

// equivalent checks that two operands may be mixed.
func equivalent(op string, a, b *kinds.Kind) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: operands of %s", ErrNoKind, op)
	}
	if !a.Equivalent(b) {
		return &MismatchError{Op: op, Left: a, Right: b}
	}
	return nil
}
