package types

// Standard table names for Store.GetTable.
const (
	KindsTable       = "kinds"
	ResolutionsTable = "resolutions"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	KindsTable,
	ResolutionsTable,
}
