package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mesh-intelligence/quantikind/pkg/types"
)

// Compile-time interface check: resolutionsTable must implement Table.
var _ types.Table = (*resolutionsTable)(nil)

const resolutionColumns = "resolution_id, seed_id, dimension, outcome, result_id, result, created_at"

// resolutionsTable implements the Table interface for the resolution log.
// Records are append-only: Set with the ID of an existing record fails.
type resolutionsTable struct {
	backend *Backend
}

// Get retrieves a logged resolution by ID.
func (rt *resolutionsTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	rt.backend.mu.RLock()
	defer rt.backend.mu.RUnlock()
	if err := rt.backend.checkAttached(); err != nil {
		return nil, err
	}

	row := rt.backend.db.QueryRow("SELECT "+resolutionColumns+" FROM resolutions WHERE resolution_id = ?", id)
	r, err := hydrateResolution(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting resolution %s: %w", id, err)
	}
	return r, nil
}

// Set appends a resolution. The seed kind must exist and the outcome must be
// known. If id is empty a UUID v7 is generated.
func (rt *resolutionsTable) Set(id string, data any) (string, error) {
	r, ok := data.(*types.ResolutionRecord)
	if !ok || r == nil {
		return "", types.ErrInvalidData
	}
	if !types.ValidOutcome(r.Outcome) || r.SeedID == "" {
		return "", types.ErrInvalidData
	}

	rt.backend.mu.Lock()
	defer rt.backend.mu.Unlock()
	if err := rt.backend.checkAttached(); err != nil {
		return "", err
	}

	var exists int
	err := rt.backend.db.QueryRow("SELECT 1 FROM kinds WHERE kind_id = ?", r.SeedID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: seed %s", types.ErrNotFound, r.SeedID)
	}
	if err != nil {
		return "", fmt.Errorf("checking seed kind: %w", err)
	}

	if id == "" {
		id = r.ResolutionID
	}
	if id == "" {
		id = generateUUID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	_, err = rt.backend.db.Exec(
		"INSERT INTO resolutions ("+resolutionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, r.SeedID, r.Dimension, r.Outcome, nullString(r.ResultID), r.Result, r.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("logging resolution: %w", err)
	}
	r.ResolutionID = id

	if err := persistResolutionsJSONL(rt.backend.db, rt.backend.dataDir); err != nil {
		return "", fmt.Errorf("persisting %s: %w", resolutionsJSONL, err)
	}
	return id, nil
}

// Delete removes a logged resolution by ID.
func (rt *resolutionsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	rt.backend.mu.Lock()
	defer rt.backend.mu.Unlock()
	if err := rt.backend.checkAttached(); err != nil {
		return err
	}

	res, err := rt.backend.db.Exec("DELETE FROM resolutions WHERE resolution_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting resolution: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}
	return persistResolutionsJSONL(rt.backend.db, rt.backend.dataDir)
}

// Fetch returns logged resolutions, newest first. Supported filters:
// "seed_id" (string), "outcome" (string), "limit" and "offset" (int).
func (rt *resolutionsTable) Fetch(filter map[string]any) ([]any, error) {
	rt.backend.mu.RLock()
	defer rt.backend.mu.RUnlock()
	if err := rt.backend.checkAttached(); err != nil {
		return nil, err
	}

	query := "SELECT " + resolutionColumns + " FROM resolutions"
	var conditions []string
	var args []any
	for _, col := range []string{"seed_id", "outcome"} {
		v, ok := filter[col]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		conditions = append(conditions, col+" = ?")
		args = append(args, s)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY rowid DESC"

	page, err := pagination(filter)
	if err != nil {
		return nil, err
	}
	query += page

	rows, err := rt.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching resolutions: %w", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		r, err := hydrateResolution(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// hydrateResolution scans one resolutions row into a record.
func hydrateResolution(row rowScanner) (*types.ResolutionRecord, error) {
	var r types.ResolutionRecord
	var resultID sql.NullString
	var createdAt string
	if err := row.Scan(&r.ResolutionID, &r.SeedID, &r.Dimension, &r.Outcome, &resultID, &r.Result, &createdAt); err != nil {
		return nil, err
	}
	r.ResultID = resultID.String
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing resolution created_at: %w", err)
	}
	r.CreatedAt = t
	return &r, nil
}

// persistResolutionsJSONL writes the resolution log to resolutions.jsonl in
// insertion order.
func persistResolutionsJSONL(db *sql.DB, dataDir string) error {
	rows, err := db.Query("SELECT " + resolutionColumns + " FROM resolutions ORDER BY rowid")
	if err != nil {
		return fmt.Errorf("reading resolutions for JSONL: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		r, err := hydrateResolution(rows)
		if err != nil {
			return fmt.Errorf("scanning resolution for JSONL: %w", err)
		}
		rec, err := dehydrateResolution(r)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return writeJSONL(filepath.Join(dataDir, resolutionsJSONL), records)
}
