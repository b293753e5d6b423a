// Package codegen turns a kind catalog into Go source with one named type
// per kind. Operations that the runtime layer rejects with errors, such as
// adding a radius to a duration or building a length from a bare number,
// have no method in the generated code and fail to compile.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"log/slog"
	"strings"
	"text/template"
	"unicode"

	"github.com/mesh-intelligence/quantikind/internal/catalog"
	"github.com/mesh-intelligence/quantikind/pkg/kinds"
)

// DefaultModulePath is the import path prefix of the runtime packages the
// generated code depends on.
const DefaultModulePath = "github.com/mesh-intelligence/quantikind"

// ErrNameCollision is returned when two kind names map to the same Go
// identifier.
var ErrNameCollision = errors.New("kind names collide as Go identifiers")

// Generator renders catalogs to Go source.
type Generator struct {
	modulePath string
	logger     *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithModulePath overrides DefaultModulePath.
func WithModulePath(path string) Option {
	return func(g *Generator) {
		if path != "" {
			g.modulePath = path
		}
	}
}

// WithLogger sets the logger for generation records.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New returns a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		modulePath: DefaultModulePath,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// kindData is the template view of one kind.
type kindData struct {
	Name          string
	Go            string
	Var           string
	Doc           string
	Dim           string
	ParentVar     string
	Dimensionless bool
	// Narrow names the parent type a value may be narrowed from; empty when
	// the parent has a different dimension.
	Narrow string
	// Widen lists the ancestor types with the same dimension.
	Widen []string
	// Reciprocal is the type of s/x, or empty when it resolves to a bound
	// kind and the erased value is returned.
	Reciprocal string
}

type fileData struct {
	Package    string
	Rep        string
	ModulePath string
	Source     string
	Kinds      []kindData
}

// Generate resolves c and renders it as a gofmt-formatted Go file. It fails
// when any resolution over the catalog is ambiguous.
func (g *Generator) Generate(c *catalog.Catalog) ([]byte, error) {
	return g.GenerateFrom(c, "")
}

// GenerateFrom is like Generate and records source, typically the catalog
// path, in the file header.
func (g *Generator) GenerateFrom(c *catalog.Catalog, source string) ([]byte, error) {
	if !token.IsIdentifier(c.Package) {
		return nil, fmt.Errorf("%w: package name %q", catalog.ErrInvalidCatalog, c.Package)
	}
	reg, err := c.Build(kinds.WithLogger(g.logger))
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	if err := reg.Verify(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", c.Package, err)
	}

	data := fileData{
		Package:    c.Package,
		Rep:        c.Rep,
		ModulePath: g.modulePath,
		Source:     source,
	}

	docs := make(map[string]string, len(c.Kinds))
	for _, e := range c.Kinds {
		docs[e.Name] = e.Doc
	}
	if err := checkIdentifiers(reg); err != nil {
		return nil, err
	}

	for _, k := range reg.Kinds() {
		kd := kindData{
			Name:          k.Name(),
			Go:            GoName(k.Name()),
			Var:           "kind" + GoName(k.Name()),
			Doc:           docs[k.Name()],
			Dim:           k.Dimension().String(),
			Dimensionless: k.Dimension().IsOne(),
		}
		if p := k.Parent(); p != nil {
			kd.ParentVar = "kind" + GoName(p.Name())
			if p.Dimension() == k.Dimension() {
				kd.Narrow = GoName(p.Name())
			}
		}
		for _, a := range k.Ancestors() {
			if a.Dimension() == k.Dimension() {
				kd.Widen = append(kd.Widen, GoName(a.Name()))
			}
		}

		r, err := reg.Resolve(k, k.Dimension().Inv())
		if err != nil {
			return nil, fmt.Errorf("resolving reciprocal of %s: %w", k.Name(), err)
		}
		if !r.IsBound() {
			kd.Reciprocal = GoName(r.Name())
		}
		data.Kinds = append(data.Kinds, kd)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	g.logger.Info("generated kinds",
		"package", c.Package,
		"rep", c.Rep,
		"kinds", len(data.Kinds))
	return src, nil
}

// checkIdentifiers rejects catalogs whose generated top-level identifiers
// would clash.
func checkIdentifiers(reg *kinds.Registry) error {
	owner := map[string]string{"Registry": "the package registry"}
	claim := func(id, kind string) error {
		if prev, ok := owner[id]; ok && prev != kind {
			return fmt.Errorf("%w: %s is generated for both %s and %s", ErrNameCollision, id, prev, kind)
		}
		owner[id] = kind
		return nil
	}
	for _, k := range reg.Kinds() {
		name := GoName(k.Name())
		ids := []string{name, "New" + name, "Must" + name, name + "FromNumber"}
		if p := k.Parent(); p != nil {
			ids = append(ids, name+"From"+GoName(p.Name()))
		}
		for _, id := range ids {
			if err := claim(id, k.Name()); err != nil {
				return err
			}
		}
	}
	return nil
}

// GoName converts a kind name such as "rate_of_climb" to an exported Go
// identifier ("RateOfClimb").
func GoName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	s := b.String()
	if s == "" || !unicode.IsLetter([]rune(s)[0]) {
		s = "K" + s
	}
	return s
}

var fileTemplate = template.Must(template.New("kinds").Parse(fileTemplateText))

const fileTemplateText = `// Code generated by quantikind generate. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

// Package {{.Package}} provides typed kinds. Each kind is a distinct type,
// so values of different kinds cannot be mixed.
package {{.Package}}

import (
	"{{.ModulePath}}/pkg/kinds"
	"{{.ModulePath}}/pkg/quantikind"
	"{{.ModulePath}}/pkg/units"
)

// Registry holds the kinds of this package.
var Registry = kinds.NewRegistry()

var (
{{- range .Kinds}}
{{- if .ParentVar}}
	{{.Var}} = Registry.MustDeclare("{{.Name}}", {{.ParentVar}}, units.MustParseDimension("{{.Dim}}"))
{{- else}}
	{{.Var}} = Registry.MustBase("{{.Name}}", units.MustParseDimension("{{.Dim}}"))
{{- end}}
{{- end}}
)
{{range $k := .Kinds}}
{{- $rep := $.Rep}}
// {{.Go}} is a {{.Name}} value ({{.Dim}}).{{if .Doc}} {{.Doc}}{{end}}
// The zero {{.Go}} has no kind; build values with New{{.Go}}.
type {{.Go}} struct{ v quantikind.Value[{{$rep}}] }

// New{{.Go}} tags q as a {{.Name}}.
func New{{.Go}}(q units.Quantity[{{$rep}}]) ({{.Go}}, error) {
	v, err := quantikind.FromQuantity({{.Var}}, q)
	if err != nil {
		return {{.Go}}{}, err
	}
	return {{.Go}}{v}, nil
}

// Must{{.Go}} is like New{{.Go}} but panics on error.
func Must{{.Go}}(q units.Quantity[{{$rep}}]) {{.Go}} {
	x, err := New{{.Go}}(q)
	if err != nil {
		panic(err)
	}
	return x
}
{{if .Dimensionless}}
// {{.Go}}FromNumber returns n as a {{.Name}}.
func {{.Go}}FromNumber(n {{$rep}}) {{.Go}} {
	return {{.Go}}{quantikind.Must(quantikind.FromNumber({{.Var}}, n))}
}
{{end}}
{{- if .Narrow}}
// {{.Go}}From{{.Narrow}} narrows p to a {{.Name}}.
func {{.Go}}From{{.Narrow}}(p {{.Narrow}}) ({{.Go}}, error) {
	v, err := quantikind.Cast({{.Var}}, p.v)
	if err != nil {
		return {{.Go}}{}, err
	}
	return {{.Go}}{v}, nil
}
{{end}}
// Kind returns the {{.Name}} kind.
func ({{.Go}}) Kind() *kinds.Kind { return {{.Var}} }

// Value returns x as a runtime kind-tagged value.
func (x {{.Go}}) Value() quantikind.Value[{{$rep}}] { return x.v }

// Common returns the kind-erased quantity.
func (x {{.Go}}) Common() units.Quantity[{{$rep}}] { return x.v.Common() }

// Number returns the numeric value in x's unit.
func (x {{.Go}}) Number() {{$rep}} { return x.v.Number() }

// Unit returns x's unit.
func (x {{.Go}}) Unit() units.Unit { return x.v.Unit() }

func (x {{.Go}}) String() string { return x.v.String() }

// In returns x expressed in u.
func (x {{.Go}}) In(u units.Unit) ({{.Go}}, error) {
	v, err := x.v.In(u)
	if err != nil {
		return x, err
	}
	return {{.Go}}{v}, nil
}

// Add returns x+o in x's unit.
func (x {{.Go}}) Add(o {{.Go}}) ({{.Go}}, error) {
	v, err := x.v.Add(o.v)
	if err != nil {
		return x, err
	}
	return {{.Go}}{v}, nil
}

// Sub returns x-o in x's unit.
func (x {{.Go}}) Sub(o {{.Go}}) ({{.Go}}, error) {
	v, err := x.v.Sub(o.v)
	if err != nil {
		return x, err
	}
	return {{.Go}}{v}, nil
}

// Neg returns -x.
func (x {{.Go}}) Neg() {{.Go}} {
	v, err := x.v.Neg()
	if err != nil {
		// Only the kindless zero value fails, and it is its own negation.
		return x
	}
	return {{.Go}}{v}
}

// MulScalar returns x·s.
func (x {{.Go}}) MulScalar(s {{$rep}}) {{.Go}} { return {{.Go}}{x.v.MulScalar(s)} }

// DivScalar returns x/s.
func (x {{.Go}}) DivScalar(s {{$rep}}) {{.Go}} { return {{.Go}}{x.v.DivScalar(s)} }

// Mul returns x·q with its kind resolved at run time.
func (x {{.Go}}) Mul(q units.Quantity[{{$rep}}]) (quantikind.Value[{{$rep}}], error) {
	return x.v.MulQuantity(q)
}

// Div returns x/q with its kind resolved at run time.
func (x {{.Go}}) Div(q units.Quantity[{{$rep}}]) (quantikind.Value[{{$rep}}], error) {
	return x.v.DivQuantity(q)
}
{{if .Reciprocal}}
// Reciprocal returns s/x.
func (x {{.Go}}) Reciprocal(s {{$rep}}) ({{.Reciprocal}}, error) {
	v, err := quantikind.ScalarDiv(s, x.v)
	if err != nil {
		return {{.Reciprocal}}{}, err
	}
	return {{.Reciprocal}}{v}, nil
}
{{else}}
// Reciprocal returns s/x. No kind is declared for its dimension, so the
// result carries the bound base kind.
func (x {{.Go}}) Reciprocal(s {{$rep}}) (quantikind.Value[{{$rep}}], error) {
	return quantikind.ScalarDiv(s, x.v)
}
{{end}}
// Cmp compares x with o.
func (x {{.Go}}) Cmp(o {{.Go}}) (int, error) { return x.v.Cmp(o.v) }

// Less reports whether x < o.
func (x {{.Go}}) Less(o {{.Go}}) bool {
	c, err := x.v.Cmp(o.v)
	return err == nil && c < 0
}

// Equal reports whether x and o denote the same amount.
func (x {{.Go}}) Equal(o {{.Go}}) bool {
	c, err := x.v.Cmp(o.v)
	return err == nil && c == 0
}
{{- range .Widen}}

// To{{.}} widens x to a {{.}}.
func (x {{$k.Go}}) To{{.}}() {{.}} {
	v, err := quantikind.Widen(kind{{.}}, x.v)
	if err != nil {
		// Only the kindless zero value fails; it widens to the zero value.
		return {{.}}{}
	}
	return {{.}}{v}
}
{{- end}}
{{end}}`
