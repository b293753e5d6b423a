package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quantikind/pkg/types"
)

// attach returns an attached backend over a fresh temp dir.
func attach(t *testing.T) (*Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { b.Detach() })
	return b, dir
}

func kindsOf(t *testing.T, b *Backend) types.Table {
	t.Helper()
	tbl, err := b.GetTable(types.KindsTable)
	require.NoError(t, err)
	return tbl
}

func TestAttachCreatesFiles(t *testing.T) {
	_, dir := attach(t)

	for _, name := range append([]string{databaseFile}, jsonlFiles...) {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestAttachValidatesConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(types.Config{DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	err = b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestAttachTwice(t *testing.T) {
	b, dir := attach(t)
	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestGetTable(t *testing.T) {
	b, _ := attach(t)

	for _, name := range types.StandardTableNames {
		tbl, err := b.GetTable(name)
		require.NoError(t, err, name)
		assert.NotNil(t, tbl)
	}

	_, err := b.GetTable("units")
	assert.ErrorIs(t, err, types.ErrTableNotFound)
}

func TestDetach(t *testing.T) {
	b, _ := attach(t)
	tbl := kindsOf(t, b)

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach(), "detach is idempotent")

	_, err := b.GetTable(types.KindsTable)
	assert.ErrorIs(t, err, types.ErrStoreDetached)

	_, err = tbl.Fetch(nil)
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = tbl.Set("", &types.KindRecord{Name: "area", Dimension: "L^2"})
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestSeedBaseKinds(t *testing.T) {
	b, dir := attach(t)

	rows, err := kindsOf(t, b).Fetch(nil)
	require.NoError(t, err)
	require.Len(t, rows, len(builtInKinds))
	for i, row := range rows {
		rec := row.(*types.KindRecord)
		assert.Equal(t, builtInKinds[i].name, rec.Name)
		assert.Equal(t, builtInKinds[i].dim.String(), rec.Dimension)
		assert.True(t, rec.IsBase())
	}

	lines, err := readJSONL(filepath.Join(dir, kindsJSONL))
	require.NoError(t, err)
	assert.Len(t, lines, len(builtInKinds))
}

func TestReattachReloadsWithoutReseeding(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	b := NewBackend()
	require.NoError(t, b.Attach(cfg))
	tbl := kindsOf(t, b)
	length := fetchByName(t, tbl, "length")
	radiusID, err := tbl.Set("", &types.KindRecord{Name: "radius", ParentID: length.KindID})
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	b2 := NewBackend()
	require.NoError(t, b2.Attach(cfg))
	defer b2.Detach()

	rows, err := kindsOf(t, b2).Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, rows, len(builtInKinds)+1)

	got, err := kindsOf(t, b2).Get(radiusID)
	require.NoError(t, err)
	rec := got.(*types.KindRecord)
	assert.Equal(t, "radius", rec.Name)
	assert.Equal(t, length.KindID, rec.ParentID)
	assert.Equal(t, "L", rec.Dimension)
}

func TestRegistryFromStore(t *testing.T) {
	b, _ := attach(t)
	tbl := kindsOf(t, b)
	length := fetchByName(t, tbl, "length")
	_, err := tbl.Set("", &types.KindRecord{Name: "wavenumber", ParentID: length.KindID, Dimension: "L^-1"})
	require.NoError(t, err)

	reg, err := types.Registry(b)
	require.NoError(t, err)
	assert.Equal(t, len(builtInKinds)+1, reg.Len())

	wn, err := reg.Lookup("wavenumber")
	require.NoError(t, err)
	assert.Equal(t, "length", wn.Base().Name())
	assert.NoError(t, reg.Verify())
}

// fetchByName returns the stored kind with the given name.
func fetchByName(t *testing.T, tbl types.Table, name string) *types.KindRecord {
	t.Helper()
	rows, err := tbl.Fetch(map[string]any{"name": name})
	require.NoError(t, err)
	require.Len(t, rows, 1, name)
	return rows[0].(*types.KindRecord)
}
