// Package catalog reads and writes YAML kind catalogs. A catalog lists kinds
// by name with an optional parent and dimension and carries the settings the
// code generator needs: the Go package name and the numeric representation.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/units"
)

// Catalog errors.
var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrUnknownParent  = errors.New("unknown parent kind")
	ErrCycle          = errors.New("kind hierarchy has a cycle")
	ErrDuplicateName  = errors.New("duplicate kind name")
	ErrUnsupportedRep = errors.New("unsupported representation")
	ErrConflict       = errors.New("kind conflicts with an existing declaration")
)

// Defaults applied by Parse when a catalog omits them.
const (
	DefaultPackage = "kinds"
	DefaultRep     = "float64"
)

// supportedReps are the Go types a catalog may name as its representation.
var supportedReps = []string{
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64",
	"float32", "float64",
}

// Catalog is a kind hierarchy in file form.
type Catalog struct {
	Package string  `yaml:"package"`
	Rep     string  `yaml:"rep"`
	Kinds   []Entry `yaml:"kinds"`
}

// Entry declares one kind. Dimension may be empty for a specialization, in
// which case the parent's dimension is used. A base kind must name one.
type Entry struct {
	Name      string `yaml:"name"`
	Parent    string `yaml:"parent,omitempty"`
	Dimension string `yaml:"dimension,omitempty"`
	Doc       string `yaml:"doc,omitempty"`
}

// Load reads and validates the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if c.Package == "" {
		c.Package = DefaultPackage
	}
	if c.Rep == "" {
		c.Rep = DefaultRep
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal encodes c as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return data, nil
}

// Save writes c to path.
func (c *Catalog) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks names, parents, dimensions and the representation. All
// problems found are returned joined.
func (c *Catalog) Validate() error {
	var errs []error
	if c.Rep != "" && !slices.Contains(supportedReps, c.Rep) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedRep, c.Rep))
	}

	byName := make(map[string]Entry, len(c.Kinds))
	for i, e := range c.Kinds {
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("%w: kind %d has no name", ErrInvalidCatalog, i))
			continue
		}
		if _, dup := byName[e.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateName, e.Name))
			continue
		}
		byName[e.Name] = e
	}

	for _, e := range c.Kinds {
		if e.Name == "" {
			continue
		}
		if e.Parent == "" && e.Dimension == "" {
			errs = append(errs, fmt.Errorf("%w: base kind %s has no dimension", ErrInvalidCatalog, e.Name))
		}
		if e.Parent != "" {
			if _, ok := byName[e.Parent]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s (parent of %s)", ErrUnknownParent, e.Parent, e.Name))
			}
		}
		if e.Dimension != "" {
			if _, err := units.ParseDimension(e.Dimension); err != nil {
				errs = append(errs, fmt.Errorf("kind %s: %w", e.Name, err))
			}
		}
	}

	for _, e := range c.Kinds {
		seen := map[string]bool{}
		for n := e.Name; n != ""; n = byName[n].Parent {
			if seen[n] {
				errs = append(errs, fmt.Errorf("%w: through %s", ErrCycle, e.Name))
				break
			}
			seen[n] = true
		}
	}
	return errors.Join(errs...)
}

// Dimensions returns the effective dimension of every kind, filling in
// inherited ones. c must be valid.
func (c *Catalog) Dimensions() (map[string]units.Dimension, error) {
	order, err := c.order()
	if err != nil {
		return nil, err
	}
	dims := make(map[string]units.Dimension, len(order))
	for _, e := range order {
		if e.Dimension == "" {
			dims[e.Name] = dims[e.Parent]
			continue
		}
		d, err := units.ParseDimension(e.Dimension)
		if err != nil {
			return nil, fmt.Errorf("kind %s: %w", e.Name, err)
		}
		dims[e.Name] = d
	}
	return dims, nil
}

// Build declares the catalog's kinds, parents first, into a new registry.
func (c *Catalog) Build(opts ...kinds.Option) (*kinds.Registry, error) {
	reg := kinds.NewRegistry(opts...)
	if err := c.DeclareInto(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// DeclareInto declares the catalog's kinds into reg, parents first.
func (c *Catalog) DeclareInto(reg *kinds.Registry) error {
	if err := c.Validate(); err != nil {
		return err
	}
	order, err := c.order()
	if err != nil {
		return err
	}
	dims, err := c.Dimensions()
	if err != nil {
		return err
	}
	for _, e := range order {
		if e.Parent == "" {
			if _, err := reg.DeclareBase(e.Name, dims[e.Name]); err != nil {
				return err
			}
			continue
		}
		parent, err := reg.Lookup(e.Parent)
		if err != nil {
			return err
		}
		if _, err := reg.Declare(e.Name, parent, dims[e.Name]); err != nil {
			return err
		}
	}
	return nil
}

// MergeInto declares the catalog's kinds that reg does not know yet,
// parents first, and returns them. A kind reg already declares must have
// the same parent and dimension as its catalog entry, or ErrConflict is
// returned.
func (c *Catalog) MergeInto(reg *kinds.Registry) ([]*kinds.Kind, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	order, err := c.order()
	if err != nil {
		return nil, err
	}
	dims, err := c.Dimensions()
	if err != nil {
		return nil, err
	}

	var added []*kinds.Kind
	for _, e := range order {
		dim := dims[e.Name]
		if k, err := reg.Lookup(e.Name); err == nil {
			if err := sameDeclaration(k, e, dim); err != nil {
				return added, err
			}
			continue
		}

		var k *kinds.Kind
		if e.Parent == "" {
			k, err = reg.DeclareBase(e.Name, dim)
		} else {
			var parent *kinds.Kind
			if parent, err = reg.Lookup(e.Parent); err == nil {
				k, err = reg.Declare(e.Name, parent, dim)
			}
		}
		if err != nil {
			return added, err
		}
		added = append(added, k)
	}
	return added, nil
}

func sameDeclaration(k *kinds.Kind, e Entry, dim units.Dimension) error {
	parent := ""
	if p := k.Parent(); p != nil {
		parent = p.Name()
	}
	if parent != e.Parent || k.Dimension() != dim {
		return fmt.Errorf("%w: %s is declared under %q as %s, catalog has %q as %s",
			ErrConflict, e.Name, parent, k.Dimension(), e.Parent, dim)
	}
	return nil
}

// order returns the entries sorted so that every parent precedes its
// children. Otherwise file order is kept.
func (c *Catalog) order() ([]Entry, error) {
	byName := make(map[string]Entry, len(c.Kinds))
	for _, e := range c.Kinds {
		byName[e.Name] = e
	}

	done := make(map[string]bool, len(c.Kinds))
	visiting := make(map[string]bool)
	out := make([]Entry, 0, len(c.Kinds))

	var visit func(Entry) error
	visit = func(e Entry) error {
		if done[e.Name] {
			return nil
		}
		if visiting[e.Name] {
			return fmt.Errorf("%w: through %s", ErrCycle, e.Name)
		}
		visiting[e.Name] = true
		if p, ok := byName[e.Parent]; ok && e.Parent != "" {
			if err := visit(p); err != nil {
				return err
			}
		}
		visiting[e.Name] = false
		done[e.Name] = true
		out = append(out, e)
		return nil
	}
	for _, e := range c.Kinds {
		if err := visit(e); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FromRegistry exports the declared kinds of reg as a catalog. Dimensions
// are written only where they differ from the parent's.
func FromRegistry(reg *kinds.Registry, pkg, rep string) *Catalog {
	c := &Catalog{Package: pkg, Rep: rep}
	for _, k := range reg.Kinds() {
		e := Entry{Name: k.Name()}
		if p := k.Parent(); p != nil {
			e.Parent = p.Name()
			if p.Dimension() != k.Dimension() {
				e.Dimension = k.Dimension().String()
			}
		} else {
			e.Dimension = k.Dimension().String()
		}
		c.Kinds = append(c.Kinds, e)
	}
	return c
}
