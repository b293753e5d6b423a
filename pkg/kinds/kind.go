package kinds

import "github.com/mesh-intelligence/quantikind/pkg/units"

// Kind is a semantic role for a dimension, such as radius or wavelength for
// length. Kinds form a forest: a base kind is a root tied to one dimension,
// and every other kind specializes a parent declared in the same Registry.
//
// Kinds are created by a Registry and never change afterwards. Compare them
// by pointer.
type Kind struct {
	id     string
	name   string
	dim    units.Dimension
	parent *Kind
	base   *Kind
	bound  bool
	reg    *Registry
}

// ID returns the kind's UUID.
func (k *Kind) ID() string { return k.id }

// Name returns the declared name. A bound kind reports its base's name.
func (k *Kind) Name() string { return k.name }

// Dimension returns the dimension the kind is valid for.
func (k *Kind) Dimension() units.Dimension { return k.dim }

// Parent returns the kind this one specializes, or nil for a base kind.
func (k *Kind) Parent() *Kind { return k.parent }

// Base returns the root of k's specialization chain; k itself for a base
// kind.
func (k *Kind) Base() *Kind { return k.base }

// Registry returns the registry that declared k.
func (k *Kind) Registry() *Registry { return k.reg }

// IsBase reports whether k is a declared root kind.
func (k *Kind) IsBase() bool { return k.parent == nil }

// IsBound reports whether k is the fallback produced when resolution finds
// no declared kind: the base kind bound to a dimension other than its own.
func (k *Kind) IsBound() bool { return k.bound }

// Equivalent reports whether k and o share a base kind. Only equivalent
// kinds may be mixed in binary operations.
func (k *Kind) Equivalent(o *Kind) bool {
	if k == nil || o == nil {
		return false
	}
	return k.base == o.base
}

// IsA reports whether anc is k or one of k's ancestors.
func (k *Kind) IsA(anc *Kind) bool {
	for c := k; c != nil; c = c.parent {
		if c == anc {
			return true
		}
	}
	return false
}

// Ancestors returns k's parent chain, nearest first, ending with the base.
func (k *Kind) Ancestors() []*Kind {
	var out []*Kind
	for c := k.parent; c != nil; c = c.parent {
		out = append(out, c)
	}
	return out
}

// Resolve returns the most specific kind for dim starting from k. It is
// shorthand for k.Registry().Resolve(k, dim).
func (k *Kind) Resolve(dim units.Dimension) (*Kind, error) {
	return k.reg.Resolve(k, dim)
}

// String returns the name, with the dimension appended for bound kinds.
func (k *Kind) String() string {
	if k == nil {
		return "<nil>"
	}
	if k.bound {
		return k.name + "[" + k.dim.String() + "]"
	}
	return k.name
}
