// Package errors defines the error kinds shared across the marketplace.
// Domain invariant violations all surface as ErrInvalidArgument with a
// human-readable message; there is no finer-grained taxonomy.
package errors

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Invalidf builds an invalid-argument error carrying a readable message.
// Callers branch on it with errors.Is(err, ErrInvalidArgument).
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
