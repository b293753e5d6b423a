package sqlite_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quantikind/pkg/sqlite"
	"github.com/mesh-intelligence/quantikind/pkg/types"
	"github.com/mesh-intelligence/quantikind/pkg/units"
)

func TestNewBackend(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := sqlite.NewBackend(logger)
	require.NoError(t, s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	t.Cleanup(func() { _ = s.Detach() })

	reg, err := types.Registry(s)
	require.NoError(t, err)
	length, err := reg.Lookup("length")
	require.NoError(t, err)
	assert.Equal(t, units.Dim(units.Length, 1), length.Dimension())
	assert.NotEmpty(t, logs.String(), "attach is logged")
}

func TestNewBackendNilLogger(t *testing.T) {
	s := sqlite.NewBackend(nil)
	require.NoError(t, s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	assert.NoError(t, s.Detach())
}
