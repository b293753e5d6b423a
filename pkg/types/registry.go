package types

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
)

// Registry rebuilds a kinds.Registry from the kinds table of s. Stored IDs
// are kept, so a kind looked up in the registry can be written back.
func Registry(s Store, opts ...kinds.Option) (*kinds.Registry, error) {
	tbl, err := s.GetTable(KindsTable)
	if err != nil {
		return nil, err
	}
	rows, err := tbl.Fetch(nil)
	if err != nil {
		return nil, err
	}

	pending := make([]*KindRecord, 0, len(rows))
	for _, row := range rows {
		rec, ok := row.(*KindRecord)
		if !ok {
			return nil, ErrInvalidData
		}
		pending = append(pending, rec)
	}

	reg := kinds.NewRegistry(opts...)
	// Records normally arrive parents first; the loop also copes with any
	// other order.
	for len(pending) > 0 {
		var next []*KindRecord
		for _, rec := range pending {
			declared, err := declareRecord(reg, rec)
			if err != nil {
				return nil, err
			}
			if !declared {
				next = append(next, rec)
			}
		}
		if len(next) == len(pending) {
			return nil, fmt.Errorf("%w: %s (parent of %s)", ErrParentNotFound, next[0].ParentID, next[0].Name)
		}
		pending = next
	}
	return reg, nil
}

// declareRecord declares rec into reg. It reports false when rec's parent
// has not been declared yet.
func declareRecord(reg *kinds.Registry, rec *KindRecord) (bool, error) {
	dim, err := rec.ParsedDimension()
	if err != nil {
		return false, fmt.Errorf("kind %s: %w", rec.Name, err)
	}
	if rec.IsBase() {
		_, err := reg.DeclareBase(rec.Name, dim, kinds.WithID(rec.KindID))
		return err == nil, err
	}
	parent, err := reg.LookupID(rec.ParentID)
	if errors.Is(err, kinds.ErrKindNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	_, err = reg.Declare(rec.Name, parent, dim, kinds.WithID(rec.KindID))
	return err == nil, err
}

// Record converts a declared kind to its stored form.
func Record(k *kinds.Kind) *KindRecord {
	rec := &KindRecord{
		KindID:    k.ID(),
		Name:      k.Name(),
		Dimension: k.Dimension().String(),
	}
	if p := k.Parent(); p != nil {
		rec.ParentID = p.ID()
	}
	return rec
}

// SaveRegistry stores every kind of reg that s does not hold yet, parents
// first, and returns how many were added. docs supplies optional doc
// strings by kind name.
func SaveRegistry(s Store, reg *kinds.Registry, docs map[string]string) (int, error) {
	tbl, err := s.GetTable(KindsTable)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, k := range reg.Kinds() {
		_, err := tbl.Get(k.ID())
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return added, err
		}
		rec := Record(k)
		rec.Doc = docs[k.Name()]
		if _, err := tbl.Set(rec.KindID, rec); err != nil {
			return added, fmt.Errorf("storing kind %s: %w", k.Name(), err)
		}
		added++
	}
	return added, nil
}
