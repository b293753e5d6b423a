package sqlite

// Schema DDL for the kind store tables.
const (
	createKinds = `CREATE TABLE kinds (
    kind_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    parent_id TEXT,
    dimension TEXT NOT NULL,
    doc TEXT,
    created_at TEXT NOT NULL,
    FOREIGN KEY (parent_id) REFERENCES kinds(kind_id)
);`

	createResolutions = `CREATE TABLE resolutions (
    resolution_id TEXT PRIMARY KEY,
    seed_id TEXT NOT NULL,
    dimension TEXT NOT NULL,
    outcome TEXT NOT NULL,
    result_id TEXT,
    result TEXT NOT NULL,
    created_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxKindsParent        = `CREATE INDEX idx_kinds_parent ON kinds(parent_id);`
	idxResolutionsSeed    = `CREATE INDEX idx_resolutions_seed ON resolutions(seed_id);`
	idxResolutionsOutcome = `CREATE INDEX idx_resolutions_outcome ON resolutions(outcome);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createKinds,
	createResolutions,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxKindsParent,
	idxResolutionsSeed,
	idxResolutionsOutcome,
}

// JSONL file names in DataDir. JSONL is the source of truth; the SQLite
// database is rebuilt from these files on every Attach.
const (
	kindsJSONL       = "kinds.jsonl"
	resolutionsJSONL = "resolutions.jsonl"
	databaseFile     = "quantikind.db"
)

// jsonlFiles lists every JSONL file the backend creates on Attach.
var jsonlFiles = []string{
	kindsJSONL,
	resolutionsJSONL,
}
