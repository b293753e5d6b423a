package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quantikind/internal/catalog"
	"github.com/mesh-intelligence/quantikind/pkg/kinds"
)

const geometryCatalog = `
package: geometry
rep: float64
kinds:
  - name: length
    dimension: L
  - name: radius
    parent: length
    doc: Distance from a centre.
  - name: rate_of_climb
    parent: length
    dimension: L/T
  - name: wavenumber
    parent: length
    dimension: L^-1
  - name: one
    dimension: "1"
`

// decls parses src and indexes its top-level functions and methods. Methods
// are keyed "Recv.Name".
func decls(t *testing.T, src []byte) (*ast.File, map[string]*ast.FuncDecl) {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "kinds.go", src, parser.ParseComments)
	require.NoError(t, err)

	funcs := make(map[string]*ast.FuncDecl)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok {
			continue
		}
		key := fd.Name.Name
		if fd.Recv != nil {
			key = recvName(fd.Recv.List[0].Type) + "." + key
		}
		funcs[key] = fd
	}
	return f, funcs
}

func recvName(e ast.Expr) string {
	if id, ok := e.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func resultType(fd *ast.FuncDecl) string {
	switch e := fd.Type.Results.List[0].Type.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.IndexExpr:
		if sel, ok := e.X.(*ast.SelectorExpr); ok {
			return sel.Sel.Name
		}
	}
	return ""
}

func generate(t *testing.T, doc string) []byte {
	t.Helper()
	c, err := catalog.Parse([]byte(doc))
	require.NoError(t, err)
	src, err := New().GenerateFrom(c, "catalogs/geometry.yaml")
	require.NoError(t, err)
	return src
}

func TestGenerateParses(t *testing.T) {
	src := generate(t, geometryCatalog)

	f, funcs := decls(t, src)
	assert.Equal(t, "geometry", f.Name.Name)
	assert.True(t, strings.HasPrefix(string(src), "// Code generated by quantikind generate. DO NOT EDIT.\n// Source: catalogs/geometry.yaml\n"))
	assert.Contains(t, string(src), `"github.com/mesh-intelligence/quantikind/pkg/quantikind"`)
	assert.Contains(t, string(src), "// Radius is a radius value (L). Distance from a centre.")

	for _, name := range []string{"Length", "Radius", "RateOfClimb", "Wavenumber", "One"} {
		assert.Contains(t, funcs, "New"+name)
		assert.Contains(t, funcs, "Must"+name)
		for _, m := range []string{"Add", "Sub", "Neg", "MulScalar", "DivScalar", "Cmp", "Less", "Equal", "Common", "Value", "Kind", "Reciprocal"} {
			assert.Contains(t, funcs, name+"."+m)
		}
	}
}

func TestFromNumberOnlyForDimensionlessKinds(t *testing.T) {
	_, funcs := decls(t, generate(t, geometryCatalog))

	assert.Contains(t, funcs, "OneFromNumber")
	for _, name := range []string{"Length", "Radius", "RateOfClimb", "Wavenumber"} {
		assert.NotContains(t, funcs, name+"FromNumber")
	}
}

func TestWideningFollowsSameDimensionAncestors(t *testing.T) {
	_, funcs := decls(t, generate(t, geometryCatalog))

	assert.Contains(t, funcs, "Radius.ToLength")
	assert.Contains(t, funcs, "RadiusFromLength")
	assert.NotContains(t, funcs, "RateOfClimb.ToLength")
	assert.NotContains(t, funcs, "RateOfClimbFromLength")
	assert.NotContains(t, funcs, "Length.ToRadius")
}

func TestReciprocalTypesResolvedAtGenerateTime(t *testing.T) {
	_, funcs := decls(t, generate(t, geometryCatalog))

	assert.Equal(t, "Wavenumber", resultType(funcs["Radius.Reciprocal"]))
	assert.Equal(t, "Wavenumber", resultType(funcs["Length.Reciprocal"]))
	assert.Equal(t, "Length", resultType(funcs["Wavenumber.Reciprocal"]))
	assert.Equal(t, "One", resultType(funcs["One.Reciprocal"]))
	assert.Equal(t, "Value", resultType(funcs["RateOfClimb.Reciprocal"]), "bound results are erased")
}

func TestGenerateRejectsAmbiguousCatalog(t *testing.T) {
	c, err := catalog.Parse([]byte(`
package: flight
kinds:
  - {name: length, dimension: L}
  - {name: height, parent: length}
  - {name: altitude, parent: length}
  - {name: rate_of_climb, parent: height, dimension: L/T}
  - {name: ascent_rate, parent: altitude, dimension: L/T}
`))
	require.NoError(t, err)

	_, err = New().Generate(c)
	assert.ErrorIs(t, err, kinds.ErrAmbiguousKind)
}

func TestGenerateRejectsCollidingNames(t *testing.T) {
	c, err := catalog.Parse([]byte(`
kinds:
  - {name: rate_of_climb, dimension: L/T}
  - {name: rate-of-climb, dimension: L/T}
`))
	require.NoError(t, err)

	_, err = New().Generate(c)
	assert.ErrorIs(t, err, ErrNameCollision)

	c, err = catalog.Parse([]byte("kinds:\n  - {name: registry, dimension: L}\n"))
	require.NoError(t, err)
	_, err = New().Generate(c)
	assert.ErrorIs(t, err, ErrNameCollision)
}

func TestGenerateRejectsBadPackageName(t *testing.T) {
	c, err := catalog.Parse([]byte("package: my-kinds\nkinds:\n  - {name: length, dimension: L}\n"))
	require.NoError(t, err)

	_, err = New().Generate(c)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestGenerateIntegerRep(t *testing.T) {
	c, err := catalog.Parse([]byte("package: counts\nrep: int64\nkinds:\n  - {name: items, dimension: \"1\"}\n"))
	require.NoError(t, err)

	src, err := New(WithModulePath("example.com/qk")).Generate(c)
	require.NoError(t, err)
	assert.Contains(t, string(src), "func ItemsFromNumber(n int64) Items")
	assert.Contains(t, string(src), `"example.com/qk/pkg/units"`)
	assert.NotContains(t, string(src), "// Source:")
}

func TestGoName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"length", "Length"},
		{"rate_of_climb", "RateOfClimb"},
		{"rate-of-climb", "RateOfClimb"},
		{"wave.number", "WaveNumber"},
		{"2d_area", "K2dArea"},
		{"", "K"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, GoName(tt.in))
		})
	}
}
