package rtv

import (
	"errors"
	"fmt"
)

// Sentinel errors describing the RTV's small contract-violation taxonomy.
// Callers should use errors.Is against these rather than comparing error
// values directly, since public operations wrap them with context via
// fmt.Errorf("...: %w", ...).
var (
	// ErrOutOfBounds is returned by Get, Set and similar index-taking
	// operations when the index is outside [0, Size()).
	ErrOutOfBounds = errors.New("rtv: index out of bounds")

	// ErrEmptyPop is returned by Pop when the vector is empty. It is a
	// specialisation of ErrOutOfBounds.
	ErrEmptyPop = fmt.Errorf("%w: pop from empty vector", ErrOutOfBounds)

	// ErrInvalidArgument is returned for negative capacities, negative
	// resize targets, or a source sequence whose advertised size does not
	// match the number of elements it actually yields.
	ErrInvalidArgument = errors.New("rtv: invalid argument")

	// ErrStructuralInvariant is returned by Invariants when it detects a
	// broken invariant; under the rtvdebug build tag the post-mutation
	// check panics with it.
	ErrStructuralInvariant = errors.New("rtv: structural invariant violated")
)
