package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/units"
)

const geometryYAML = `
package: geometry
rep: float64
kinds:
  - name: rate_of_climb
    parent: height
    dimension: L/T
  - name: length
    dimension: L
  - name: radius
    parent: length
  - name: height
    parent: length
  - name: wavenumber
    parent: length
    dimension: L^-1
  - name: one
    dimension: "1"
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(geometryYAML))
	require.NoError(t, err)

	assert.Equal(t, "geometry", c.Package)
	assert.Equal(t, "float64", c.Rep)
	require.Len(t, c.Kinds, 6)
	assert.Equal(t, Entry{Name: "radius", Parent: "length"}, c.Kinds[2])
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte("kinds:\n  - name: length\n    dimension: L\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPackage, c.Package)
	assert.Equal(t, DefaultRep, c.Rep)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"malformed yaml", "kinds: [", ErrInvalidCatalog},
		{"unsupported rep", "rep: complex128\nkinds: []\n", ErrUnsupportedRep},
		{"missing name", "kinds:\n  - dimension: L\n", ErrInvalidCatalog},
		{"duplicate name", "kinds:\n  - {name: a, dimension: L}\n  - {name: a, dimension: T}\n", ErrDuplicateName},
		{"unknown parent", "kinds:\n  - {name: radius, parent: length}\n", ErrUnknownParent},
		{"base without dimension", "kinds:\n  - {name: length}\n", ErrInvalidCatalog},
		{"bad dimension", "kinds:\n  - {name: length, dimension: Q}\n", units.ErrInvalidDimension},
		{"cycle", "kinds:\n  - {name: a, parent: b}\n  - {name: b, parent: a}\n", ErrCycle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDimensionsInherit(t *testing.T) {
	c, err := Parse([]byte(geometryYAML))
	require.NoError(t, err)

	dims, err := c.Dimensions()
	require.NoError(t, err)
	l := units.Dim(units.Length, 1)
	assert.Equal(t, l, dims["radius"])
	assert.Equal(t, l.Div(units.Dim(units.Time, 1)), dims["rate_of_climb"])
	assert.Equal(t, units.DimOne, dims["one"])
}

func TestBuild(t *testing.T) {
	c, err := Parse([]byte(geometryYAML))
	require.NoError(t, err)

	reg, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, 6, reg.Len())

	climb, err := reg.Lookup("rate_of_climb")
	require.NoError(t, err)
	assert.Equal(t, "height", climb.Parent().Name())
	assert.Equal(t, "length", climb.Base().Name())

	// Parents are declared before children regardless of file order.
	names := make([]string, 0, reg.Len())
	for _, k := range reg.Kinds() {
		names = append(names, k.Name())
	}
	assert.Equal(t, []string{"length", "height", "rate_of_climb", "radius", "wavenumber", "one"}, names)
	assert.NoError(t, reg.Verify())
}

func TestDeclareIntoExistingName(t *testing.T) {
	c, err := Parse([]byte(geometryYAML))
	require.NoError(t, err)

	reg := kinds.NewRegistry()
	reg.MustBase("one", units.DimOne)
	assert.ErrorIs(t, c.DeclareInto(reg), kinds.ErrDuplicateKind)
}

func TestMergeInto(t *testing.T) {
	c, err := Parse([]byte(geometryYAML))
	require.NoError(t, err)

	reg := kinds.NewRegistry()
	length := reg.MustBase("length", units.Dim(units.Length, 1))
	reg.MustBase("one", units.DimOne)

	added, err := c.MergeInto(reg)
	require.NoError(t, err)

	names := make([]string, len(added))
	for i, k := range added {
		names[i] = k.Name()
	}
	assert.Equal(t, []string{"height", "rate_of_climb", "radius", "wavenumber"}, names)

	radius, err := reg.Lookup("radius")
	require.NoError(t, err)
	assert.Same(t, length, radius.Parent())

	again, err := c.MergeInto(reg)
	require.NoError(t, err)
	assert.Empty(t, again, "merging twice adds nothing")
}

func TestMergeIntoConflict(t *testing.T) {
	c, err := Parse([]byte(geometryYAML))
	require.NoError(t, err)

	reg := kinds.NewRegistry()
	reg.MustBase("length", units.Dim(units.Length, 2))

	_, err = c.MergeInto(reg)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoadAndSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "geometry.yaml")
	require.NoError(t, os.WriteFile(src, []byte(geometryYAML), 0o644))

	c, err := Load(src)
	require.NoError(t, err)
	reg, err := c.Build()
	require.NoError(t, err)

	exported := FromRegistry(reg, c.Package, c.Rep)
	dst := filepath.Join(dir, "export.yaml")
	require.NoError(t, exported.Save(dst))

	again, err := Load(dst)
	require.NoError(t, err)
	reg2, err := again.Build()
	require.NoError(t, err)

	require.Equal(t, reg.Len(), reg2.Len())
	for _, k := range reg.Kinds() {
		k2, err := reg2.Lookup(k.Name())
		require.NoError(t, err)
		assert.Equal(t, k.Dimension(), k2.Dimension(), k.Name())
		if k.Parent() != nil {
			assert.Equal(t, k.Parent().Name(), k2.Parent().Name())
		}
	}
}

func TestFromRegistryOmitsInheritedDimensions(t *testing.T) {
	reg := kinds.NewRegistry()
	length := reg.MustBase("length", units.Dim(units.Length, 1))
	reg.MustDeclare("radius", length, units.Dim(units.Length, 1))

	c := FromRegistry(reg, "geo", "int64")
	assert.Equal(t, []Entry{
		{Name: "length", Dimension: "L"},
		{Name: "radius", Parent: "length"},
	}, c.Kinds)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
