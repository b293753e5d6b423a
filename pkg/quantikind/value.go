package quantikind

import (
	"fmt"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/units"
)

// Value is a quantity of representation R tagged with a kind. The unit of
// the wrapped quantity always has the kind's dimension.
//
// The zero Value has no kind. It can be read and incremented, but binary
// operations on it fail with ErrNoKind.
type Value[R units.Number] struct {
	kind *kinds.Kind
	q    units.Quantity[R]
}

// Default returns the representation's default value, zero, of kind k in
// unit u.
func Default[R units.Number](k *kinds.Kind, u units.Unit) (Value[R], error) {
	return FromQuantity(k, units.Zero[R](u))
}

// FromNumber tags a raw number with k. Only dimensionless kinds accept a
// bare number; the value is taken to be in unit one.
func FromNumber[R units.Number](k *kinds.Kind, v R) (Value[R], error) {
	if k == nil {
		return Value[R]{}, ErrNoKind
	}
	if !k.Dimension().IsOne() {
		return Value[R]{}, fmt.Errorf("%w: %s has dimension %s", ErrNotDimensionless, k, k.Dimension())
	}
	return Value[R]{kind: k, q: units.Dimensionless(v)}, nil
}

// FromQuantity tags q with k. It is the only way to attach a kind to a
// plain measurement, and Common on the result returns q unchanged.
func FromQuantity[R units.Number](k *kinds.Kind, q units.Quantity[R]) (Value[R], error) {
	if k == nil {
		return Value[R]{}, ErrNoKind
	}
	if q.Dimension() != k.Dimension() {
		return Value[R]{}, fmt.Errorf("%w: %s is %s, quantity is %s",
			ErrDimensionMismatch, k, k.Dimension(), q.Dimension())
	}
	return Value[R]{kind: k, q: q}, nil
}

// Must returns v or panics if err is non-nil. It is intended for values
// built from constants.
func Must[R units.Number](v Value[R], err error) Value[R] {
	if err != nil {
		panic(err)
	}
	return v
}

// Convert returns v with representation To, keeping kind and unit.
func Convert[To, From units.Number](v Value[From]) Value[To] {
	return Value[To]{kind: v.kind, q: units.ConvertRep[To](v.q)}
}

// Widen retags v with target, which must be v's kind or one of its
// ancestors with the same dimension. This is the conversion a more general
// kind accepts silently; going the other way requires Cast.
func Widen[R units.Number](target *kinds.Kind, v Value[R]) (Value[R], error) {
	if target == nil || v.kind == nil {
		return Value[R]{}, ErrNoKind
	}
	if !v.kind.IsA(target) {
		return Value[R]{}, fmt.Errorf("%w: %s is not a %s", ErrNarrowing, v.kind, target)
	}
	if target.Dimension() != v.Dimension() {
		return Value[R]{}, fmt.Errorf("%w: %s is %s, value is %s",
			ErrDimensionMismatch, target, target.Dimension(), v.Dimension())
	}
	return Value[R]{kind: target, q: v.q}, nil
}

// Cast retags v with any kind-equivalent target of the same dimension,
// including a more specific one.
func Cast[R units.Number](target *kinds.Kind, v Value[R]) (Value[R], error) {
	if target == nil || v.kind == nil {
		return Value[R]{}, ErrNoKind
	}
	if !v.kind.Equivalent(target) {
		return Value[R]{}, &MismatchError{Op: "cast to", Left: v.kind, Right: target}
	}
	if target.Dimension() != v.Dimension() {
		return Value[R]{}, fmt.Errorf("%w: %s is %s, value is %s",
			ErrDimensionMismatch, target, target.Dimension(), v.Dimension())
	}
	return Value[R]{kind: target, q: v.q}, nil
}

// Zero returns 0 of kind k in unit u.
func Zero[R units.Number](k *kinds.Kind, u units.Unit) (Value[R], error) {
	return FromQuantity(k, units.Zero[R](u))
}

// One returns 1 of kind k in unit u.
func One[R units.Number](k *kinds.Kind, u units.Unit) (Value[R], error) {
	return FromQuantity(k, units.OneOf[R](u))
}

// Min returns the lowest finite value of R as kind k in unit u.
func Min[R units.Number](k *kinds.Kind, u units.Unit) (Value[R], error) {
	return FromQuantity(k, units.Min[R](u))
}

// Max returns the highest finite value of R as kind k in unit u.
func Max[R units.Number](k *kinds.Kind, u units.Unit) (Value[R], error) {
	return FromQuantity(k, units.Max[R](u))
}

// Common returns the kind-erased quantity.
func (v Value[R]) Common() units.Quantity[R] { return v.q }

// Kind returns v's kind, or nil for the zero Value.
func (v Value[R]) Kind() *kinds.Kind { return v.kind }

// Unit returns the unit v is expressed in.
func (v Value[R]) Unit() units.Unit { return v.q.Unit() }

// Number returns the numeric value in v's unit.
func (v Value[R]) Number() R { return v.q.Value() }

// Dimension returns the dimension of v's unit.
func (v Value[R]) Dimension() units.Dimension { return v.q.Dimension() }

// In returns v expressed in u, keeping its kind.
func (v Value[R]) In(u units.Unit) (Value[R], error) {
	q, err := v.q.In(u)
	if err != nil {
		return v, err
	}
	return Value[R]{kind: v.kind, q: q}, nil
}

// String renders v as "kind(quantity)", for example "radius(5 m)".
func (v Value[R]) String() string {
	if v.kind == nil {
		return v.q.String()
	}
	return v.kind.String() + "(" + v.q.String() + ")"
}
