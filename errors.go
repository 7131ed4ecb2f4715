package segtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrIllegalArguments is flagged whenever range arguments are invalid.
	// Both ErrOutOfDomain and ErrMalformedRange match it with errors.Is.
	ErrIllegalArguments = errors.New("segtree: illegal arguments")
	// ErrOutOfDomain signals a range which is not contained in the tree's domain.
	ErrOutOfDomain = fmt.Errorf("%w: range outside of domain", ErrIllegalArguments)
	// ErrMalformedRange signals a range with lo > hi.
	ErrMalformedRange = fmt.Errorf("%w: malformed range", ErrIllegalArguments)
	// ErrInvariant is returned by Check for a corrupted tree.
	ErrInvariant = errors.New("segtree: invariant violated")
)
