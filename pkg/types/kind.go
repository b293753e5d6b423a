package types

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/mesh-intelligence/quantikind/pkg/units"
)

// KindRecord is a persisted kind declaration. A record with an empty
// ParentID is a base kind. Dimension is stored in its canonical text form
// ("L", "L/T", "1").
type KindRecord struct {
	KindID    string    `json:"kind_id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parent_id,omitempty"`
	Dimension string    `json:"dimension"`
	Doc       string    `json:"doc,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsBase reports whether the record declares a root of the hierarchy.
func (k *KindRecord) IsBase() bool { return k.ParentID == "" }

// Validate checks the name and dimension. Names may not contain spaces and
// a base kind must name its dimension. Parent existence is checked by the
// table, which can see the other records.
func (k *KindRecord) Validate() error {
	if k.Name == "" || strings.IndexFunc(k.Name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidName, k.Name)
	}
	if k.IsBase() && strings.TrimSpace(k.Dimension) == "" {
		return fmt.Errorf("%w: base kind %s has no dimension", ErrInvalidDimension, k.Name)
	}
	if _, err := k.ParsedDimension(); err != nil {
		return err
	}
	return nil
}

// ParsedDimension parses Dimension.
func (k *KindRecord) ParsedDimension() (units.Dimension, error) {
	d, err := units.ParseDimension(k.Dimension)
	if err != nil {
		return units.Dimension{}, fmt.Errorf("%w: %q: %v", ErrInvalidDimension, k.Dimension, err)
	}
	return d, nil
}
