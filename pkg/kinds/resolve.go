package kinds

import (
	"fmt"

	"github.com/mesh-intelligence/quantikind/pkg/units"
)

// Make returns the most specific kind already known at the call site that
// is valid for dim: seed itself when its dimension matches, otherwise the
// nearest ancestor of seed with that dimension. The boolean is false when
// no kind on seed's chain has dimension dim.
func (r *Registry) Make(seed *Kind, dim units.Dimension) (*Kind, bool) {
	for c := seed; c != nil; c = c.parent {
		if c.dim == dim {
			return c, true
		}
	}
	return nil, false
}

// Downcast picks the kind for dim from the specializations of seed's base
// kind B:
//
//   - B itself when dim is B's dimension;
//   - the single specialization of B that introduces dim, that is, whose
//     dimension is dim and whose parent's is not;
//   - B bound to dim when no specialization introduces it.
//
// Two or more introducing specializations yield an *AmbiguityError.
func (r *Registry) Downcast(seed *Kind, dim units.Dimension) (*Kind, error) {
	if err := r.owns(seed); err != nil {
		return nil, err
	}
	b := seed.base
	if b.dim == dim {
		return b, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.downcastLocked(b, dim)
}

func (r *Registry) downcastLocked(b *Kind, dim units.Dimension) (*Kind, error) {
	var candidates []*Kind
	for _, s := range r.specializationsLocked(b) {
		if s.dim == dim && isEntryPoint(s) {
			candidates = append(candidates, s)
		}
	}

	switch len(candidates) {
	case 0:
		return r.bindLocked(b, dim), nil
	case 1:
		return candidates[0], nil
	default:
		err := &AmbiguityError{Base: b, Dim: dim, Candidates: candidates}
		r.logger.Warn("ambiguous kind resolution",
			"base", b.name,
			"dimension", dim.String(),
			"candidates", len(candidates))
		return nil, err
	}
}

// Resolve returns the kind to attach to a result of dimension dim computed
// from an operand of kind seed. It prefers the most specific kind already
// known (Make) and only searches the hierarchy (Downcast) when seed's chain
// has no kind for dim. Results are cached until the next declaration.
func (r *Registry) Resolve(seed *Kind, dim units.Dimension) (*Kind, error) {
	if err := r.owns(seed); err != nil {
		return nil, err
	}
	if k, ok := r.Make(seed, dim); ok {
		return k, nil
	}

	key := boundKey{kind: seed, dim: dim}
	r.mu.RLock()
	k, ok := r.memo[key]
	r.mu.RUnlock()
	if ok {
		return k, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if b := seed.base; b.dim == dim {
		k = b
	} else {
		var err error
		k, err = r.downcastLocked(b, dim)
		if err != nil {
			return nil, err
		}
	}
	r.memo[key] = k
	return k, nil
}

// Bind returns base bound to dim: the fallback kind for results that no
// declared specialization of base covers. Bound kinds are interned, so the
// same (base, dim) pair always yields the same *Kind.
func (r *Registry) Bind(base *Kind, dim units.Dimension) (*Kind, error) {
	if err := r.owns(base); err != nil {
		return nil, err
	}
	base = base.base
	if base.dim == dim {
		return base, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bindLocked(base, dim), nil
}

func (r *Registry) bindLocked(b *Kind, dim units.Dimension) *Kind {
	key := boundKey{kind: b, dim: dim}
	if k, ok := r.bound[key]; ok {
		return k
	}
	k := &Kind{
		id:     generateUUID(),
		name:   b.name,
		dim:    dim,
		parent: b,
		base:   b,
		bound:  true,
		reg:    r,
	}
	r.bound[key] = k
	r.logger.Debug("kind bound", "base", b.name, "dimension", dim.String())
	return k
}

func (r *Registry) owns(k *Kind) error {
	if k == nil {
		return fmt.Errorf("%w: nil kind", ErrKindNotFound)
	}
	if k.reg != r {
		return fmt.Errorf("%w: %s", ErrForeignKind, k.name)
	}
	return nil
}

// isEntryPoint reports whether k introduces its dimension into its tree,
// i.e. its parent has a different dimension. Refinements that keep the
// parent's dimension, such as radius under length, can only be reached by
// Make, never by searching.
func isEntryPoint(k *Kind) bool {
	return k.parent != nil && k.parent.dim != k.dim
}
