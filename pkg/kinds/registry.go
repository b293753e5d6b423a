package kinds

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/quantikind/pkg/units"
)

// Registry is a closed set of kinds and the resolution engine over them.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]*Kind
	byID     map[string]*Kind
	order    []*Kind
	children map[*Kind][]*Kind
	bound    map[boundKey]*Kind
	memo     map[boundKey]*Kind
	logger   *slog.Logger
}

// boundKey identifies a kind together with a dimension. It keys both the
// bound-kind intern table and the resolution cache.
type boundKey struct {
	kind *Kind
	dim  units.Dimension
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for declaration and resolution records.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byName:   make(map[string]*Kind),
		byID:     make(map[string]*Kind),
		children: make(map[*Kind][]*Kind),
		bound:    make(map[boundKey]*Kind),
		memo:     make(map[boundKey]*Kind),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DeclareOption adjusts a single declaration.
type DeclareOption func(*Kind)

// WithID assigns a known ID instead of generating one. It is used when a
// registry is rebuilt from persisted records.
func WithID(id string) DeclareOption {
	return func(k *Kind) {
		if id != "" {
			k.id = id
		}
	}
}

// DeclareBase declares a root kind for dim.
func (r *Registry) DeclareBase(name string, dim units.Dimension, opts ...DeclareOption) (*Kind, error) {
	return r.declare(name, nil, dim, opts)
}

// Declare declares a kind that specializes parent. The dimension may differ
// from the parent's: a rate of climb specializes height yet is a speed.
func (r *Registry) Declare(name string, parent *Kind, dim units.Dimension, opts ...DeclareOption) (*Kind, error) {
	if parent == nil {
		return nil, fmt.Errorf("%w: %s has no parent", ErrInvalidParent, name)
	}
	return r.declare(name, parent, dim, opts)
}

// MustBase is like DeclareBase but panics on error.
func (r *Registry) MustBase(name string, dim units.Dimension) *Kind {
	k, err := r.DeclareBase(name, dim)
	if err != nil {
		panic(err)
	}
	return k
}

// MustDeclare is like Declare but panics on error.
func (r *Registry) MustDeclare(name string, parent *Kind, dim units.Dimension) *Kind {
	k, err := r.Declare(name, parent, dim)
	if err != nil {
		panic(err)
	}
	return k
}

func (r *Registry) declare(name string, parent *Kind, dim units.Dimension, opts []DeclareOption) (*Kind, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateKind, name)
	}
	if parent != nil {
		if parent.reg != r {
			return nil, fmt.Errorf("%w: parent %s of %s", ErrForeignKind, parent.Name(), name)
		}
		if parent.bound {
			return nil, fmt.Errorf("%w: %s cannot specialize bound kind %s", ErrInvalidParent, name, parent)
		}
	}

	k := &Kind{
		id:     generateUUID(),
		name:   name,
		dim:    dim,
		parent: parent,
		reg:    r,
	}
	for _, opt := range opts {
		opt(k)
	}
	if _, ok := r.byID[k.id]; ok {
		return nil, fmt.Errorf("%w: id %s", ErrDuplicateKind, k.id)
	}
	if parent == nil {
		k.base = k
	} else {
		k.base = parent.base
		r.children[parent] = append(r.children[parent], k)
	}

	r.byName[name] = k
	r.byID[k.id] = k
	r.order = append(r.order, k)
	clear(r.memo)

	r.logger.Debug("kind declared",
		"name", name,
		"dimension", dim.String(),
		"base", k.base.name,
		"id", k.id)
	return k, nil
}

// Lookup returns the declared kind with the given name.
func (r *Registry) Lookup(name string) (*Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKindNotFound, name)
	}
	return k, nil
}

// LookupID returns the declared kind with the given ID.
func (r *Registry) LookupID(id string) (*Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrKindNotFound, id)
	}
	return k, nil
}

// Len returns the number of declared kinds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Kinds returns all declared kinds in declaration order. Bound kinds are
// not included.
func (r *Registry) Kinds() []*Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Kind(nil), r.order...)
}

// Bases returns the declared root kinds in declaration order.
func (r *Registry) Bases() []*Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Kind
	for _, k := range r.order {
		if k.parent == nil {
			out = append(out, k)
		}
	}
	return out
}

// Children returns the kinds that directly specialize k.
func (r *Registry) Children(k *Kind) []*Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Kind(nil), r.children[k]...)
}

// Specializations returns every declared descendant of k, depth first in
// declaration order. k itself is not included.
func (r *Registry) Specializations(k *Kind) []*Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.specializationsLocked(k)
}

func (r *Registry) specializationsLocked(k *Kind) []*Kind {
	var out []*Kind
	var walk func(*Kind)
	walk = func(n *Kind) {
		for _, c := range r.children[n] {
			out = append(out, c)
			walk(c)
		}
	}
	walk(k)
	return out
}

// Verify checks every base kind for dimensions that more than one
// specialization could be resolved to. It returns all ambiguities joined, or
// nil when every resolution over the registry is unambiguous.
func (r *Registry) Verify() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []error
	for _, b := range r.order {
		if b.parent != nil {
			continue
		}
		byDim := make(map[units.Dimension][]*Kind)
		var dims []units.Dimension
		for _, s := range r.specializationsLocked(b) {
			if !isEntryPoint(s) || s.dim == b.dim {
				continue
			}
			if _, seen := byDim[s.dim]; !seen {
				dims = append(dims, s.dim)
			}
			byDim[s.dim] = append(byDim[s.dim], s)
		}
		sort.Slice(dims, func(i, j int) bool { return dims[i].String() < dims[j].String() })
		for _, d := range dims {
			if c := byDim[d]; len(c) > 1 {
				errs = append(errs, &AmbiguityError{Base: b, Dim: d, Candidates: c})
			}
		}
	}
	return errors.Join(errs...)
}

// validName accepts non-empty names without whitespace.
func validName(name string) bool {
	if name == "" {
		return false
	}
	return strings.IndexFunc(name, unicode.IsSpace) < 0
}

// generateUUID generates a new UUID v7 for kind IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
