package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quantikind/pkg/types"
)

func resolutionsOf(t *testing.T, b *Backend) types.Table {
	t.Helper()
	tbl, err := b.GetTable(types.ResolutionsTable)
	require.NoError(t, err)
	return tbl
}

func TestResolutionsLog(t *testing.T) {
	b, dir := attach(t)
	length := fetchByName(t, kindsOf(t, b), "length")
	tbl := resolutionsOf(t, b)

	first := &types.ResolutionRecord{SeedID: length.KindID, Dimension: "L^-1", Outcome: types.OutcomeBound, Result: "length[L^-1]"}
	id, err := tbl.Set("", first)
	require.NoError(t, err)
	assert.Equal(t, id, first.ResolutionID)
	assert.False(t, first.CreatedAt.IsZero())

	second := &types.ResolutionRecord{SeedID: length.KindID, Dimension: "L", Outcome: types.OutcomeDeclared, ResultID: length.KindID, Result: "length"}
	_, err = tbl.Set("", second)
	require.NoError(t, err)

	got, err := tbl.Get(id)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	rows, err := tbl.Fetch(nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ResolutionID, rows[0].(*types.ResolutionRecord).ResolutionID, "newest first")

	rows, err = tbl.Fetch(map[string]any{"outcome": types.OutcomeBound})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	lines, err := readJSONL(filepath.Join(dir, resolutionsJSONL))
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestResolutionsSetErrors(t *testing.T) {
	b, _ := attach(t)
	length := fetchByName(t, kindsOf(t, b), "length")
	tbl := resolutionsOf(t, b)

	tests := []struct {
		name    string
		data    any
		wantErr error
	}{
		{"wrong type", types.KindRecord{}, types.ErrInvalidData},
		{"unknown outcome", &types.ResolutionRecord{SeedID: length.KindID, Outcome: "maybe"}, types.ErrInvalidData},
		{"missing seed", &types.ResolutionRecord{Outcome: types.OutcomeBound}, types.ErrInvalidData},
		{"unknown seed", &types.ResolutionRecord{SeedID: "nope", Outcome: types.OutcomeBound}, types.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tbl.Set("", tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolutionsDelete(t *testing.T) {
	b, _ := attach(t)
	length := fetchByName(t, kindsOf(t, b), "length")
	tbl := resolutionsOf(t, b)

	id, err := tbl.Set("", &types.ResolutionRecord{SeedID: length.KindID, Dimension: "L", Outcome: types.OutcomeDeclared, Result: "length"})
	require.NoError(t, err)

	require.NoError(t, tbl.Delete(id))
	assert.ErrorIs(t, tbl.Delete(id), types.ErrNotFound)
	_, err = tbl.Get(id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
