package types

import "time"

// Resolution outcomes.
const (
	OutcomeDeclared  = "declared"
	OutcomeBound     = "bound"
	OutcomeAmbiguous = "ambiguous"
)

// ResolutionRecord logs one kind resolution: the seed kind, the requested
// dimension and what it resolved to. ResultID is empty unless the outcome is
// OutcomeDeclared.
type ResolutionRecord struct {
	ResolutionID string    `json:"resolution_id"`
	SeedID       string    `json:"seed_id"`
	Dimension    string    `json:"dimension"`
	Outcome      string    `json:"outcome"`
	ResultID     string    `json:"result_id,omitempty"`
	Result       string    `json:"result"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidOutcome reports whether o is a known outcome.
func ValidOutcome(o string) bool {
	switch o {
	case OutcomeDeclared, OutcomeBound, OutcomeAmbiguous:
		return true
	}
	return false
}
