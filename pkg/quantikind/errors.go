package quantikind

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
)

// Construction and operation errors.
var (
	ErrNoKind            = errors.New("value has no kind")
	ErrNotDimensionless  = errors.New("kind is not dimensionless")
	ErrDimensionMismatch = errors.New("dimension does not match kind")
	ErrNarrowing         = errors.New("implicit narrowing conversion")
	ErrKindMismatch      = errors.New("kinds are not equivalent")
)

// MismatchError reports an operation between two kinds that may not be
// mixed.
type MismatchError struct {
	Op    string
	Left  *kinds.Kind
	Right *kinds.Kind
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s %s %s", ErrKindMismatch, e.Left, e.Op, e.Right)
}

func (e *MismatchError) Unwrap() error { return ErrKindMismatch }
