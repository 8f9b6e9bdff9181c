// Package errors defines the error kinds shared by the ordering and sorting
// packages, plus a small Collection utility for accumulating multiple errors.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOrdering is returned when a sort or search is requested without
	// an explicit strategy and the element type has no natural ordering.
	// There is no fallback order; callers must supply a strategy.
	ErrNoOrdering = errors.New("no ordering available")

	// ErrIncomparableValues is returned when a strategy cannot produce a
	// valid three-way result for a pair, for example because a key the
	// strategy depends on is missing from one of the elements.
	ErrIncomparableValues = errors.New("incomparable values")

	// ErrInvalidArgument is returned when an absent value (such as a nil
	// pointer) is passed where a concrete element was required.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ComparisonError reports a comparison that failed during a sort or search.
// It carries the pair of elements that could not be compared so a faulty
// strategy can be debugged, and unwraps to the underlying error kind.
type ComparisonError struct {
	Left  any
	Right any
	Err   error
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("comparing %v with %v: %v", e.Left, e.Right, e.Err)
}

func (e *ComparisonError) Unwrap() error {
	return e.Err
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
