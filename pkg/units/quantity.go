package units

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// Quantity is a numeric value of representation R expressed in a Unit. It
// carries no semantic kind; see package quantikind for kind-tagged values.
//
// The zero Quantity is 0 in unit One.
type Quantity[R Number] struct {
	value R
	unit  Unit
}

// New returns the quantity v expressed in u.
func New[R Number](v R, u Unit) Quantity[R] {
	return Quantity[R]{value: v, unit: unitOrOne(u)}
}

// Dimensionless returns v in unit One.
func Dimensionless[R Number](v R) Quantity[R] {
	return Quantity[R]{value: v, unit: One}
}

// Zero returns the additive identity in u.
func Zero[R Number](u Unit) Quantity[R] {
	return New[R](0, u)
}

// OneOf returns the value 1 in u.
func OneOf[R Number](u Unit) Quantity[R] {
	return New[R](1, u)
}

// Min returns the lowest finite value representable in u.
func Min[R Number](u Unit) Quantity[R] {
	lo, _ := limits[R]()
	return New(lo, u)
}

// Max returns the highest finite value representable in u.
func Max[R Number](u Unit) Quantity[R] {
	_, hi := limits[R]()
	return New(hi, u)
}

// Value returns the numeric value in q's unit.
func (q Quantity[R]) Value() R { return q.value }

// Unit returns q's unit.
func (q Quantity[R]) Unit() Unit { return unitOrOne(q.unit) }

// Dimension returns q's dimension.
func (q Quantity[R]) Dimension() Dimension { return q.unit.Dim }

// In returns q expressed in u. Integer representations convert exactly and
// refuse results that are not whole or do not fit in R.
func (q Quantity[R]) In(u Unit) (Quantity[R], error) {
	u = unitOrOne(u)
	from := q.Unit()
	if from == u {
		return q, nil
	}
	if !from.Convertible(u) {
		return q, fmt.Errorf("%w: cannot express %s in %s", ErrIncompatibleDimension, from.Dim, u.Dim)
	}
	if !isInteger[R]() {
		return Quantity[R]{value: R(float64(q.value) * from.Scale / u.Scale), unit: u}, nil
	}
	v, err := convertInteger(q.value, from.Scale/u.Scale)
	if err != nil {
		return q, fmt.Errorf("%w: %v %s in %s", err, q.value, from, u)
	}
	return Quantity[R]{value: v, unit: u}, nil
}

// convertInteger multiplies v by ratio in exact arithmetic. The ratio is
// taken at its shortest decimal form, so 1e3 and 0.01 are exact.
func convertInteger[R Number](v R, ratio float64) (R, error) {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(ratio, 'g', -1, 64))
	if !ok {
		return v, ErrLossyConversion
	}
	r.Mul(r, new(big.Rat).SetInt(toBig(v)))
	if !r.IsInt() {
		return v, fmt.Errorf("%w: result is not integral", ErrLossyConversion)
	}
	n := r.Num()
	lo, hi := limits[R]()
	if n.Cmp(toBig(lo)) < 0 || n.Cmp(toBig(hi)) > 0 {
		return v, fmt.Errorf("%w: result out of range", ErrOverflow)
	}
	if n.Sign() < 0 {
		return R(n.Int64()), nil
	}
	return R(n.Uint64()), nil
}

// toBig returns the integer v as a big.Int.
func toBig[R Number](v R) *big.Int {
	if v < 0 {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// common expresses q and o in one unit: q's unit when o converts into it,
// otherwise the finer of the two. Only integer representations fall back,
// since only they refuse inexact conversions.
func (q Quantity[R]) common(o Quantity[R]) (Quantity[R], Quantity[R], error) {
	ov, err := o.In(q.Unit())
	if err == nil {
		return q, ov, nil
	}
	if !errors.Is(err, ErrLossyConversion) || o.Unit().Scale >= q.Unit().Scale {
		return q, o, err
	}
	qv, qerr := q.In(o.Unit())
	if qerr != nil {
		return q, o, qerr
	}
	return qv, o, nil
}

// Add returns q+o expressed in q's unit. For integer representations, when
// o is not whole in q's unit the sum is expressed in o's finer unit.
func (q Quantity[R]) Add(o Quantity[R]) (Quantity[R], error) {
	a, b, err := q.common(o)
	if err != nil {
		return q, err
	}
	return Quantity[R]{value: a.value + b.value, unit: a.Unit()}, nil
}

// Sub returns q-o, in the unit Add would use.
func (q Quantity[R]) Sub(o Quantity[R]) (Quantity[R], error) {
	a, b, err := q.common(o)
	if err != nil {
		return q, err
	}
	return Quantity[R]{value: a.value - b.value, unit: a.Unit()}, nil
}

// Neg returns -q.
func (q Quantity[R]) Neg() Quantity[R] {
	return Quantity[R]{value: -q.value, unit: q.Unit()}
}

// Mul returns q·o in the product unit.
func (q Quantity[R]) Mul(o Quantity[R]) Quantity[R] {
	return Quantity[R]{value: q.value * o.value, unit: q.Unit().Mul(o.Unit())}
}

// Div returns q/o in the quotient unit.
func (q Quantity[R]) Div(o Quantity[R]) Quantity[R] {
	return Quantity[R]{value: q.value / o.value, unit: q.Unit().Div(o.Unit())}
}

// MulScalar returns q·s.
func (q Quantity[R]) MulScalar(s R) Quantity[R] {
	return Quantity[R]{value: q.value * s, unit: q.Unit()}
}

// DivScalar returns q/s.
func (q Quantity[R]) DivScalar(s R) Quantity[R] {
	return Quantity[R]{value: q.value / s, unit: q.Unit()}
}

// Inverse returns s/q in the reciprocal unit.
func (q Quantity[R]) Inverse(s R) Quantity[R] {
	return Quantity[R]{value: s / q.value, unit: q.Unit().Inv()}
}

// Compare returns -1, 0 or +1 depending on whether q is less than, equal to
// or greater than o. Integer values are compared exactly in a common unit.
func (q Quantity[R]) Compare(o Quantity[R]) (int, error) {
	if q.Unit() == o.Unit() {
		return cmp3(q.value, o.value), nil
	}
	if !q.Unit().Convertible(o.Unit()) {
		return 0, fmt.Errorf("%w: cannot compare %s with %s", ErrIncompatibleDimension, q.Dimension(), o.Dimension())
	}
	if isInteger[R]() {
		if a, b, err := q.common(o); err == nil {
			return cmp3(a.value, b.value), nil
		}
	}
	a := float64(q.value) * q.Unit().Scale
	b := float64(o.value) * o.Unit().Scale
	return cmp3(a, b), nil
}

// Equal reports whether q and o denote the same amount.
func (q Quantity[R]) Equal(o Quantity[R]) bool {
	c, err := q.Compare(o)
	return err == nil && c == 0
}

// Inc adds one unit to q.
func (q *Quantity[R]) Inc() { q.value++ }

// Dec subtracts one unit from q.
func (q *Quantity[R]) Dec() { q.value-- }

// AddAssign adds o to q in place.
func (q *Quantity[R]) AddAssign(o Quantity[R]) error {
	r, err := q.Add(o)
	if err != nil {
		return err
	}
	*q = r
	return nil
}

// SubAssign subtracts o from q in place.
func (q *Quantity[R]) SubAssign(o Quantity[R]) error {
	r, err := q.Sub(o)
	if err != nil {
		return err
	}
	*q = r
	return nil
}

// MulAssign scales q by s in place.
func (q *Quantity[R]) MulAssign(s R) { q.value *= s }

// DivAssign divides q by s in place.
func (q *Quantity[R]) DivAssign(s R) { q.value /= s }

// String renders q as "<value> <unit>".
func (q Quantity[R]) String() string {
	var v string
	if isInteger[R]() {
		v = fmt.Sprint(q.value)
	} else {
		v = strconv.FormatFloat(float64(q.value), 'g', -1, 64)
	}
	if q.Unit().IsOne() {
		return v
	}
	return v + " " + q.Unit().Symbol
}

// ConvertRep converts q to representation To, keeping the unit.
func ConvertRep[To, From Number](q Quantity[From]) Quantity[To] {
	return Quantity[To]{value: To(q.value), unit: q.Unit()}
}

// Mod returns a mod b in the unit Add would use. Only integer
// representations define a remainder.
func Mod[R Integer](a, b Quantity[R]) (Quantity[R], error) {
	x, y, err := a.common(b)
	if err != nil {
		return a, err
	}
	return Quantity[R]{value: x.value % y.value, unit: x.Unit()}, nil
}

// ModScalar returns a mod s.
func ModScalar[R Integer](a Quantity[R], s R) Quantity[R] {
	return Quantity[R]{value: a.value % s, unit: a.Unit()}
}

// ModAssign replaces a with a mod s.
func ModAssign[R Integer](a *Quantity[R], s R) {
	a.value %= s
}

func cmp3[T Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// unitOrOne maps the zero Unit onto One so that the zero Quantity is usable.
func unitOrOne(u Unit) Unit {
	if u == (Unit{}) {
		return One
	}
	return u
}
