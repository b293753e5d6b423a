package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/quantikind/pkg/types"
)

// JSON record structures that mirror the JSONL file format.

// kindJSON represents a kind in kinds.jsonl.
type kindJSON struct {
	KindID    string  `json:"kind_id"`
	Name      string  `json:"name"`
	ParentID  *string `json:"parent_id"`
	Dimension string  `json:"dimension"`
	Doc       string  `json:"doc"`
	CreatedAt string  `json:"created_at"`
}

// resolutionJSON represents a logged resolution in resolutions.jsonl.
type resolutionJSON struct {
	ResolutionID string  `json:"resolution_id"`
	SeedID       string  `json:"seed_id"`
	Dimension    string  `json:"dimension"`
	Outcome      string  `json:"outcome"`
	ResultID     *string `json:"result_id"`
	Result       string  `json:"result"`
	CreatedAt    string  `json:"created_at"`
}

// dehydrateKind converts a record to its JSONL line.
func dehydrateKind(k *types.KindRecord) (json.RawMessage, error) {
	rec := kindJSON{
		KindID:    k.KindID,
		Name:      k.Name,
		ParentID:  nullable(k.ParentID),
		Dimension: k.Dimension,
		Doc:       k.Doc,
		CreatedAt: k.CreatedAt.UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshaling kind %s: %w", k.Name, err)
	}
	return data, nil
}

// dehydrateResolution converts a record to its JSONL line.
func dehydrateResolution(r *types.ResolutionRecord) (json.RawMessage, error) {
	rec := resolutionJSON{
		ResolutionID: r.ResolutionID,
		SeedID:       r.SeedID,
		Dimension:    r.Dimension,
		Outcome:      r.Outcome,
		ResultID:     nullable(r.ResultID),
		Result:       r.Result,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshaling resolution %s: %w", r.ResolutionID, err)
	}
	return data, nil
}

// nullable maps the empty string to a JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
