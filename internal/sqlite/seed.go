package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/quantikind/pkg/units"
)

// builtInKind describes a base kind to seed on first startup.
type builtInKind struct {
	name string
	dim  units.Dimension
	doc  string
}

// builtInKinds are the ISQ base quantities plus the dimensionless kind.
var builtInKinds = []builtInKind{
	{"length", units.Dim(units.Length, 1), "ISQ base quantity."},
	{"mass", units.Dim(units.Mass, 1), "ISQ base quantity."},
	{"time", units.Dim(units.Time, 1), "ISQ base quantity."},
	{"electric_current", units.Dim(units.Current, 1), "ISQ base quantity."},
	{"thermodynamic_temperature", units.Dim(units.Temperature, 1), "ISQ base quantity."},
	{"amount_of_substance", units.Dim(units.Amount, 1), "ISQ base quantity."},
	{"luminous_intensity", units.Dim(units.Luminosity, 1), "ISQ base quantity."},
	{"one", units.DimOne, "Pure numbers."},
}

// seedBaseKinds creates the built-in base kinds if the kinds table is empty
// (first run) and writes them to kinds.jsonl. It reports whether it seeded.
func seedBaseKinds(db *sql.DB, dataDir string) (bool, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM kinds").Scan(&count); err != nil {
		return false, fmt.Errorf("counting kinds: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	nowStr := time.Now().UTC().Format(time.RFC3339)

	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, bk := range builtInKinds {
		_, err := tx.Exec(
			"INSERT INTO kinds (kind_id, name, parent_id, dimension, doc, created_at) VALUES (?, ?, NULL, ?, ?, ?)",
			generateUUID(), bk.name, bk.dim.String(), bk.doc, nowStr,
		)
		if err != nil {
			return false, fmt.Errorf("seeding kind %s: %w", bk.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing seed transaction: %w", err)
	}

	if err := persistKindsJSONL(db, dataDir); err != nil {
		return false, fmt.Errorf("persisting seeded kinds: %w", err)
	}
	return true, nil
}
