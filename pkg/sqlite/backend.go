// Package sqlite provides the public API for the SQLite kind store backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"log/slog"

	"github.com/mesh-intelligence/quantikind/internal/sqlite"
	"github.com/mesh-intelligence/quantikind/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend(nil)
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".quantikind-db",
//	})
//	defer backend.Detach()
func NewBackend(logger *slog.Logger) types.Store {
	return sqlite.NewBackend(sqlite.WithLogger(logger))
}
