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

// Compile-time interface check: kindsTable must implement Table.
var _ types.Table = (*kindsTable)(nil)

const kindColumns = "kind_id, name, parent_id, dimension, doc, created_at"

// kindsTable implements the Table interface for kind declarations. Each
// operation hydrates/dehydrates between SQLite rows and *types.KindRecord
// and persists changes to kinds.jsonl atomically.
type kindsTable struct {
	backend *Backend
}

// Get retrieves a kind by ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if not found.
func (kt *kindsTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	kt.backend.mu.RLock()
	defer kt.backend.mu.RUnlock()
	if err := kt.backend.checkAttached(); err != nil {
		return nil, err
	}

	k, err := kt.get(id)
	if err != nil {
		return nil, err
	}
	return k, nil
}

func (kt *kindsTable) get(id string) (*types.KindRecord, error) {
	row := kt.backend.db.QueryRow("SELECT "+kindColumns+" FROM kinds WHERE kind_id = ?", id)
	k, err := hydrateKind(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting kind %s: %w", id, err)
	}
	return k, nil
}

// Set creates or updates a kind. If id is empty the record's own KindID is
// used, and if that is empty too a UUID v7 is generated. A specialization
// with no dimension inherits its parent's. Once stored, a kind's parent and
// dimension are fixed; only the name and doc may change.
func (kt *kindsTable) Set(id string, data any) (string, error) {
	k, ok := data.(*types.KindRecord)
	if !ok || k == nil {
		return "", types.ErrInvalidData
	}
	if err := k.Validate(); err != nil {
		return "", err
	}

	kt.backend.mu.Lock()
	defer kt.backend.mu.Unlock()
	if err := kt.backend.checkAttached(); err != nil {
		return "", err
	}

	if id == "" {
		id = k.KindID
	}
	if id == "" {
		id = generateUUID()
	}

	existing, err := kt.get(id)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return "", err
	}
	if existing != nil && strings.TrimSpace(k.Dimension) == "" {
		k.Dimension = existing.Dimension
	}

	if k.ParentID != "" {
		if k.ParentID == id {
			return "", fmt.Errorf("%w: %s cannot specialize itself", types.ErrParentNotFound, k.Name)
		}
		parent, err := kt.get(k.ParentID)
		if errors.Is(err, types.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", types.ErrParentNotFound, k.ParentID)
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(k.Dimension) == "" {
			k.Dimension = parent.Dimension
		}
	}
	dim, err := k.ParsedDimension()
	if err != nil {
		return "", err
	}
	k.Dimension = dim.String()

	var taken string
	err = kt.backend.db.QueryRow(
		"SELECT kind_id FROM kinds WHERE name = ? AND kind_id != ?", k.Name, id,
	).Scan(&taken)
	if err == nil {
		return "", fmt.Errorf("%w: %s", types.ErrDuplicateName, k.Name)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("checking kind name: %w", err)
	}

	if existing == nil {
		k.CreatedAt = time.Now().UTC().Truncate(time.Second)
		_, err = kt.backend.db.Exec(
			"INSERT INTO kinds ("+kindColumns+") VALUES (?, ?, ?, ?, ?, ?)",
			id, k.Name, nullString(k.ParentID), k.Dimension, k.Doc, k.CreatedAt.Format(time.RFC3339),
		)
	} else {
		if existing.ParentID != k.ParentID || existing.Dimension != k.Dimension {
			return "", fmt.Errorf("%w: %s", types.ErrImmutableKind, existing.Name)
		}
		k.CreatedAt = existing.CreatedAt
		_, err = kt.backend.db.Exec(
			"UPDATE kinds SET name = ?, doc = ? WHERE kind_id = ?", k.Name, k.Doc, id,
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting kind: %w", err)
	}
	k.KindID = id

	if err := persistKindsJSONL(kt.backend.db, kt.backend.dataDir); err != nil {
		return "", fmt.Errorf("persisting %s: %w", kindsJSONL, err)
	}
	kt.backend.logger.Debug("kind stored", "name", k.Name, "id", id, "dimension", k.Dimension)
	return id, nil
}

// Delete removes a kind by ID. A kind that still has specializations cannot
// be deleted: returns ErrHasChildren.
func (kt *kindsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	kt.backend.mu.Lock()
	defer kt.backend.mu.Unlock()
	if err := kt.backend.checkAttached(); err != nil {
		return err
	}

	k, err := kt.get(id)
	if err != nil {
		return err
	}

	var children int
	if err := kt.backend.db.QueryRow(
		"SELECT COUNT(*) FROM kinds WHERE parent_id = ?", id,
	).Scan(&children); err != nil {
		return fmt.Errorf("counting specializations: %w", err)
	}
	if children > 0 {
		return fmt.Errorf("%w: %s has %d", types.ErrHasChildren, k.Name, children)
	}

	if _, err := kt.backend.db.Exec("DELETE FROM kinds WHERE kind_id = ?", id); err != nil {
		return fmt.Errorf("deleting kind: %w", err)
	}
	if err := persistKindsJSONL(kt.backend.db, kt.backend.dataDir); err != nil {
		return fmt.Errorf("persisting %s: %w", kindsJSONL, err)
	}
	kt.backend.logger.Debug("kind deleted", "name", k.Name, "id", id)
	return nil
}

// Fetch returns kinds in declaration order, so every parent precedes its
// specializations. Supported filters: "name" (string), "parent_id" (string;
// empty selects base kinds), "limit" and "offset" (int).
func (kt *kindsTable) Fetch(filter map[string]any) ([]any, error) {
	kt.backend.mu.RLock()
	defer kt.backend.mu.RUnlock()
	if err := kt.backend.checkAttached(); err != nil {
		return nil, err
	}

	query := "SELECT " + kindColumns + " FROM kinds"
	var conditions []string
	var args []any

	if v, ok := filter["name"]; ok {
		name, ok := v.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		conditions = append(conditions, "name = ?")
		args = append(args, name)
	}
	if v, ok := filter["parent_id"]; ok {
		pid, ok := v.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		if pid == "" {
			conditions = append(conditions, "parent_id IS NULL")
		} else {
			conditions = append(conditions, "parent_id = ?")
			args = append(args, pid)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY rowid"

	page, err := pagination(filter)
	if err != nil {
		return nil, err
	}
	query += page

	rows, err := kt.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching kinds: %w", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		k, err := hydrateKind(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, k)
	}
	return results, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydrateKind scans one kinds row into a record.
func hydrateKind(row rowScanner) (*types.KindRecord, error) {
	var k types.KindRecord
	var parentID, doc sql.NullString
	var createdAt string
	if err := row.Scan(&k.KindID, &k.Name, &parentID, &k.Dimension, &doc, &createdAt); err != nil {
		return nil, err
	}
	k.ParentID = parentID.String
	k.Doc = doc.String
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing kind created_at: %w", err)
	}
	k.CreatedAt = t
	return &k, nil
}

// persistKindsJSONL writes every kind row to kinds.jsonl in declaration
// order.
func persistKindsJSONL(db *sql.DB, dataDir string) error {
	rows, err := db.Query("SELECT " + kindColumns + " FROM kinds ORDER BY rowid")
	if err != nil {
		return fmt.Errorf("reading kinds for JSONL: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		k, err := hydrateKind(rows)
		if err != nil {
			return fmt.Errorf("scanning kind for JSONL: %w", err)
		}
		rec, err := dehydrateKind(k)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return writeJSONL(filepath.Join(dataDir, kindsJSONL), records)
}

// pagination renders the "limit" and "offset" filters as SQL.
func pagination(filter map[string]any) (string, error) {
	var out string
	limit := -1
	if v, ok := filter["limit"]; ok {
		l, ok := toInt(v)
		if !ok {
			return "", types.ErrInvalidFilter
		}
		if l > 0 {
			limit = l
		}
	}
	if v, ok := filter["offset"]; ok {
		o, ok := toInt(v)
		if !ok {
			return "", types.ErrInvalidFilter
		}
		if o > 0 {
			return fmt.Sprintf(" LIMIT %d OFFSET %d", limit, o), nil
		}
	}
	if limit > 0 {
		out = fmt.Sprintf(" LIMIT %d", limit)
	}
	return out, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// nullString maps the empty string to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
