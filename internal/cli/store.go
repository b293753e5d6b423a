package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/quantikind/internal/sqlite"
	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/types"
)

// openStore attaches the configured backend. The caller must Detach it.
func (a *app) openStore() (*sqlite.Backend, error) {
	cfg, err := a.storeConfig()
	if err != nil {
		return nil, sysErr(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, sysErr(fmt.Errorf("config.yaml: %w", err))
	}

	backend := sqlite.NewBackend(sqlite.WithLogger(a.logger))
	if err := backend.Attach(cfg); err != nil {
		return nil, sysErr(fmt.Errorf("attach store: %w", err))
	}
	return backend, nil
}

// withStore runs fn against an attached store and its kind registry.
func (a *app) withStore(fn func(s types.Store, reg *kinds.Registry) error) (err error) {
	backend, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if derr := backend.Detach(); derr != nil && err == nil {
			err = sysErr(fmt.Errorf("detach store: %w", derr))
		}
	}()

	reg, err := types.Registry(backend, kinds.WithLogger(a.logger))
	if err != nil {
		return sysErr(fmt.Errorf("load kinds: %w", err))
	}
	return fn(backend, reg)
}

// kindsTable returns the kinds table of s.
func kindsTable(s types.Store) (types.Table, error) {
	tbl, err := s.GetTable(types.KindsTable)
	if err != nil {
		return nil, sysErr(err)
	}
	return tbl, nil
}

// storeErr classifies an error from a table operation. Rejected records
// are user errors; anything else is a storage failure.
func storeErr(err error) error {
	for _, userErr := range []error{
		types.ErrNotFound,
		types.ErrInvalidName,
		types.ErrDuplicateName,
		types.ErrInvalidDimension,
		types.ErrParentNotFound,
		types.ErrHasChildren,
		types.ErrImmutableKind,
		types.ErrInvalidFilter,
	} {
		if errors.Is(err, userErr) {
			return err
		}
	}
	return sysErr(err)
}

// docsByName maps kind names to the doc strings stored with them.
func docsByName(s types.Store) (map[string]string, error) {
	tbl, err := kindsTable(s)
	if err != nil {
		return nil, err
	}
	rows, err := tbl.Fetch(nil)
	if err != nil {
		return nil, storeErr(err)
	}
	docs := make(map[string]string, len(rows))
	for _, row := range rows {
		if rec, ok := row.(*types.KindRecord); ok && rec.Doc != "" {
			docs[rec.Name] = rec.Doc
		}
	}
	return docs, nil
}
