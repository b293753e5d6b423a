package kinds

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/quantikind/pkg/units"
)

// Registry errors.
var (
	ErrInvalidName   = errors.New("invalid kind name")
	ErrDuplicateKind = errors.New("kind already declared")
	ErrKindNotFound  = errors.New("kind not found")
	ErrForeignKind   = errors.New("kind belongs to another registry")
	ErrInvalidParent = errors.New("invalid parent kind")
	ErrAmbiguousKind = errors.New("ambiguous kind resolution")
)

// AmbiguityError reports that more than one specialization of Base is an
// equally specific match for Dim. The hierarchy must be changed, or the
// caller must convert explicitly, before the result can be tagged.
type AmbiguityError struct {
	Base       *Kind
	Dim        units.Dimension
	Candidates []*Kind
}

func (e *AmbiguityError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		names[i] = c.Name()
	}
	return fmt.Sprintf("%s: base %s has %d candidates for %s: %s",
		ErrAmbiguousKind, e.Base.Name(), len(e.Candidates), e.Dim, strings.Join(names, ", "))
}

func (e *AmbiguityError) Unwrap() error { return ErrAmbiguousKind }
