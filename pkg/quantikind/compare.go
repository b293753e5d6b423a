package quantikind

import "github.com/mesh-intelligence/quantikind/pkg/units"

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than
// b. The operands must be kind-equivalent; units may differ.
func Compare[R units.Number](a, b Value[R]) (int, error) {
	if err := equivalent("<=>", a.kind, b.kind); err != nil {
		return 0, err
	}
	return a.q.Compare(b.q)
}

// Equal reports whether kind-equivalent a and b denote the same amount.
func Equal[R units.Number](a, b Value[R]) (bool, error) {
	c, err := Compare(a, b)
	return err == nil && c == 0, err
}

// Less reports whether a is less than kind-equivalent b.
func Less[R units.Number](a, b Value[R]) (bool, error) {
	c, err := Compare(a, b)
	return err == nil && c < 0, err
}

// Cmp compares v with a value of exactly the same kind.
func (v Value[R]) Cmp(o Value[R]) (int, error) {
	if v.kind == nil || o.kind == nil {
		return 0, ErrNoKind
	}
	if v.kind != o.kind {
		return 0, &MismatchError{Op: "<=>", Left: v.kind, Right: o.kind}
	}
	return v.q.Compare(o.q)
}
