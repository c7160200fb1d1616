package overview

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the budget ID is unknown to a collaborator.
	ErrNotFound = errors.New("the budget does not exist")

	// ErrUnavailable is returned when a collaborator read failed.
	ErrUnavailable = errors.New("the budget data is currently unavailable")
)

// classify wraps a collaborator error so that it always matches exactly one
// of ErrNotFound and ErrUnavailable while keeping the original error in the chain.
func classify(err error, format string, args ...any) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf(format+": %w", append(args, err)...)
	}

	return fmt.Errorf("%w: "+format+": %w", append(append([]any{ErrUnavailable}, args...), err)...)
}
