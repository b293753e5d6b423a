package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"
)

// insertKind and insertResolution load JSONL lines into the fresh database.
// OR IGNORE drops lines that collide on ID or kind name.
const (
	insertKind = `INSERT OR IGNORE INTO kinds
    (kind_id, name, parent_id, dimension, doc, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	insertResolution = `INSERT OR IGNORE INTO resolutions
    (resolution_id, seed_id, dimension, outcome, result_id, result, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
)

// loadAllJSONL rebuilds the database from kinds.jsonl and resolutions.jsonl
// in one transaction and reports how many records of each it loaded. Lines
// that do not decode into a record, or that lack an ID or a valid timestamp,
// are skipped; unknown fields are ignored so older binaries read newer files.
func loadAllJSONL(db *sql.DB, dataDir string) (kinds, resolutions int, err error) {
	// Kinds may precede their parents in a hand-edited file, and the
	// pragma has no effect inside a transaction.
	if _, err := db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		return 0, 0, fmt.Errorf("disabling foreign keys for load: %w", err)
	}
	defer db.Exec("PRAGMA foreign_keys = ON")

	tx, err := db.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	kinds, err = loadFile(tx, dataDir, kindsJSONL, insertKind, func(line json.RawMessage) ([]any, bool) {
		var k kindJSON
		if json.Unmarshal(line, &k) != nil || k.KindID == "" || k.Name == "" || !validTime(k.CreatedAt) {
			return nil, false
		}
		parent := ""
		if k.ParentID != nil {
			parent = *k.ParentID
		}
		return []any{k.KindID, k.Name, nullString(parent), k.Dimension, nullString(k.Doc), k.CreatedAt}, true
	})
	if err != nil {
		return 0, 0, err
	}
	resolutions, err = loadFile(tx, dataDir, resolutionsJSONL, insertResolution, func(line json.RawMessage) ([]any, bool) {
		var r resolutionJSON
		if json.Unmarshal(line, &r) != nil || r.ResolutionID == "" || !validTime(r.CreatedAt) {
			return nil, false
		}
		result := ""
		if r.ResultID != nil {
			result = *r.ResultID
		}
		return []any{r.ResolutionID, r.SeedID, r.Dimension, r.Outcome, nullString(result), r.Result, r.CreatedAt}, true
	})
	if err != nil {
		return 0, 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing load transaction: %w", err)
	}
	return kinds, resolutions, nil
}

// loadFile inserts every line of one JSONL file that decode accepts and
// returns the number of rows inserted.
func loadFile(tx *sql.Tx, dataDir, file, insert string, decode func(json.RawMessage) ([]any, bool)) (int, error) {
	lines, err := readJSONL(filepath.Join(dataDir, file))
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", file, err)
	}
	if len(lines) == 0 {
		return 0, nil
	}

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return 0, fmt.Errorf("preparing insert for %s: %w", file, err)
	}
	defer stmt.Close()

	inserted := 0
	for _, line := range lines {
		args, ok := decode(line)
		if !ok {
			continue
		}
		res, err := stmt.Exec(args...)
		if err != nil {
			return 0, fmt.Errorf("loading %s: %w", file, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	return inserted, nil
}

func validTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
